package domain

const (
	MinVote = 1
	MaxVote = 10
)

func ValidVote(value int) bool {
	return value >= MinVote && value <= MaxVote
}

type VoterRecord struct {
	Username string `json:"username"`
	Vote     int    `json:"vote"`

	// исходный JSON записи, которую не удалось разобрать строго
	raw []byte
}

// LedgerEntry - накопленные голоса за одну команду.
// Record меняет TotalVotes и Voters только вместе.
type LedgerEntry struct {
	TotalVotes int
	Voters     []VoterRecord

	// исходный JSON записи, если она не содержит total_votes и voters
	raw []byte
}

func (e *LedgerEntry) Malformed() bool {
	return e.raw != nil
}

func (e *LedgerEntry) clone() *LedgerEntry {
	out := &LedgerEntry{TotalVotes: e.TotalVotes}
	if e.Voters != nil {
		out.Voters = append([]VoterRecord(nil), e.Voters...)
	}
	if e.raw != nil {
		out.raw = append([]byte(nil), e.raw...)
	}
	return out
}

// Ledger - журнал голосов. Ключи хранятся в порядке вставки,
// по ним же строится отчет.
type Ledger struct {
	keys    []string
	entries map[string]*LedgerEntry
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*LedgerEntry)}
}

func (l *Ledger) Len() int {
	return len(l.keys)
}

func (l *Ledger) Keys() []string {
	return append([]string(nil), l.keys...)
}

func (l *Ledger) Has(team string) bool {
	_, ok := l.entries[team]
	return ok
}

// Entry возвращает копию записи
func (l *Ledger) Entry(team string) (LedgerEntry, bool) {
	entry, ok := l.entries[team]
	if !ok {
		return LedgerEntry{}, false
	}
	return *entry.clone(), true
}

// Init создает пустую запись, если ключа еще нет
func (l *Ledger) Init(team string) bool {
	if l.Has(team) {
		return false
	}
	l.set(team, &LedgerEntry{Voters: []VoterRecord{}})
	return true
}

func (l *Ledger) Remove(team string) bool {
	if !l.Has(team) {
		return false
	}
	delete(l.entries, team)
	for i, key := range l.keys {
		if key == team {
			l.keys = append(l.keys[:i], l.keys[i+1:]...)
			break
		}
	}
	return true
}

// Record добавляет голос. Для отсутствующей команды ничего не делает и возвращает false.
// Поврежденная запись заменяется новой, содержащей только этот голос.
func (l *Ledger) Record(team, username string, vote int) bool {
	entry, ok := l.entries[team]
	if !ok {
		return false
	}
	record := VoterRecord{Username: username, Vote: vote}
	if entry.Malformed() {
		l.entries[team] = &LedgerEntry{TotalVotes: vote, Voters: []VoterRecord{record}}
		return true
	}
	entry.TotalVotes += vote
	entry.Voters = append(entry.Voters, record)
	return true
}

func (l *Ledger) set(team string, entry *LedgerEntry) {
	if l.entries == nil {
		l.entries = make(map[string]*LedgerEntry)
	}
	if _, ok := l.entries[team]; !ok {
		l.keys = append(l.keys, team)
	}
	l.entries[team] = entry
}

type ReportRow struct {
	Team       string
	TotalVotes int
	VoterCount int
	Voters     []VoterRecord
	Malformed  bool
}

type Report struct {
	Rows []ReportRow
}

func (l *Ledger) Report() *Report {
	report := &Report{Rows: make([]ReportRow, 0, len(l.keys))}
	for _, team := range l.keys {
		entry := l.entries[team]
		if entry.Malformed() {
			report.Rows = append(report.Rows, ReportRow{Team: team, Voters: []VoterRecord{}, Malformed: true})
			continue
		}
		report.Rows = append(report.Rows, ReportRow{
			Team:       team,
			TotalVotes: entry.TotalVotes,
			VoterCount: len(entry.Voters),
			Voters:     append([]VoterRecord{}, entry.Voters...),
		})
	}
	return report
}
