package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type ledgerEntryJSON struct {
	TotalVotes int           `json:"total_votes"`
	Voters     []VoterRecord `json:"voters"`
}

// MarshalJSON пишет объект с ключами в порядке вставки
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, team := range l.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(team)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		entry := l.entries[team]
		if entry.Malformed() {
			buf.Write(entry.raw)
			continue
		}
		voters := entry.Voters
		if voters == nil {
			voters = []VoterRecord{}
		}
		value, err := json.Marshal(ledgerEntryJSON{TotalVotes: entry.TotalVotes, Voters: voters})
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON читает объект, сохраняя порядок ключей.
// Документ, не являющийся объектом, считается поврежденным.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	l.keys = nil
	l.entries = make(map[string]*LedgerEntry)

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("votes document must be a JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		team, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v in votes document", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		l.set(team, parseLedgerEntry(raw))
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after votes document")
	}
	return nil
}

// parseLedgerEntry считает запись корректной, если total_votes - целое число,
// а voters - массив. Элементы voters разбираются нестрого.
func parseLedgerEntry(raw json.RawMessage) *LedgerEntry {
	malformed := &LedgerEntry{raw: append([]byte(nil), raw...)}

	var fields struct {
		TotalVotes json.RawMessage `json:"total_votes"`
		Voters     json.RawMessage `json:"voters"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return malformed
	}
	total, ok := wholeNumber(fields.TotalVotes)
	if !ok {
		return malformed
	}
	var voters []VoterRecord
	if err := json.Unmarshal(fields.Voters, &voters); err != nil || voters == nil {
		return malformed
	}
	return &LedgerEntry{TotalVotes: total, Voters: voters}
}

// MarshalJSON возвращает исходный JSON для записей, прочитанных нестрого
func (v VoterRecord) MarshalJSON() ([]byte, error) {
	if v.raw != nil {
		return v.raw, nil
	}
	type plain VoterRecord
	return json.Marshal(plain(v))
}

// UnmarshalJSON не возвращает ошибку для записи неожиданного вида:
// она сохраняется как есть, а username и vote извлекаются, если возможно
func (v *VoterRecord) UnmarshalJSON(data []byte) error {
	type plain VoterRecord
	var strict plain
	if err := json.Unmarshal(data, &strict); err == nil && isObject(data) {
		*v = VoterRecord(strict)
		return nil
	}

	*v = VoterRecord{raw: append([]byte(nil), data...)}
	var loose struct {
		Username any             `json:"username"`
		Vote     json.RawMessage `json:"vote"`
	}
	if err := json.Unmarshal(data, &loose); err != nil {
		return nil
	}
	if username, ok := loose.Username.(string); ok {
		v.Username = username
	}
	if vote, ok := wholeNumber(loose.Vote); ok {
		v.Vote = vote
	} else if s, ok := quotedNumber(loose.Vote); ok {
		v.Vote = s
	}
	return nil
}

// wholeNumber принимает JSON-число с целым значением, в том числе 12.0
func wholeNumber(raw json.RawMessage) (int, bool) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}
	f, ok := value.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func quotedNumber(raw json.RawMessage) (int, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
