package domain

// Teams - содержимое документа teams в порядке создания
type Teams []string

func (t Teams) Contains(name string) bool {
	for _, team := range t {
		if team == name {
			return true
		}
	}
	return false
}

// Remove удаляет первое вхождение name
func (t Teams) Remove(name string) (Teams, bool) {
	for i, team := range t {
		if team == name {
			out := make(Teams, 0, len(t)-1)
			out = append(out, t[:i]...)
			return append(out, t[i+1:]...), true
		}
	}
	return t, false
}

type ReconcileResult struct {
	// команды, для которых была создана пустая запись в журнале голосов
	CreatedEntries []string
	// ключи журнала, добавленные в список команд
	AdoptedTeams []string
}

func (r *ReconcileResult) Changed() bool {
	return len(r.CreatedEntries) > 0 || len(r.AdoptedTeams) > 0
}
