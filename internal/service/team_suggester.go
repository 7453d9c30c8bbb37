package service

import (
	"sort"
	"strings"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestTeam подбирает ближайшее зарегистрированное имя для сообщения "did you mean".
// Пустая строка, если похожих имен нет.
func SuggestTeam(name string, teams domain.Teams) string {
	if name == "" || len(teams) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(name, teams)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)

	// Точное совпадение без учета регистра важнее ранга
	for _, r := range ranks {
		if strings.EqualFold(r.Target, name) {
			return r.Target
		}
	}
	return ranks[0].Target
}
