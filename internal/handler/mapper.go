package handler

import (
	"github.com/bagdasarian/team-voting/internal/domain"
)

func domainTeamsToHTTP(teams domain.Teams) TeamsResponse {
	names := make([]string, 0, len(teams))
	names = append(names, teams...)
	return TeamsResponse{Teams: names}
}

func domainReconcileToHTTP(result *domain.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{
		CreatedEntries: []string{},
		AdoptedTeams:   []string{},
	}
	resp.CreatedEntries = append(resp.CreatedEntries, result.CreatedEntries...)
	resp.AdoptedTeams = append(resp.AdoptedTeams, result.AdoptedTeams...)
	return resp
}

func domainReportRowToHTTP(row domain.ReportRow) TeamResultResponse {
	voters := make([]VoterResponse, 0, len(row.Voters))
	for _, voter := range row.Voters {
		voters = append(voters, VoterResponse{
			Username: voter.Username,
			Vote:     voter.Vote,
		})
	}

	return TeamResultResponse{
		TeamName:   row.Team,
		TotalVotes: row.TotalVotes,
		VoterCount: row.VoterCount,
		Voters:     voters,
		Malformed:  row.Malformed,
	}
}

func domainReportToHTTP(report *domain.Report) ResultsResponse {
	results := make([]TeamResultResponse, 0, len(report.Rows))
	for _, row := range report.Rows {
		results = append(results, domainReportRowToHTTP(row))
	}
	return ResultsResponse{Results: results}
}
