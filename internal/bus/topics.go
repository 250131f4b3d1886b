package bus

import "strings"

// Topics resolves the four fixed topic names under a configured base, e.g.
// "/dforirdod/PKM" -> "/dforirdod/PKM/battle/info".
type Topics struct {
	base string
}

// NewTopics normalizes base (trailing slash optional) into a Topics.
func NewTopics(base string) Topics {
	return Topics{base: strings.TrimRight(base, "/")}
}

func (t Topics) Start() string      { return t.base + "/start" }
func (t Topics) Status() string     { return t.base + "/status" }
func (t Topics) BattleInfo() string { return t.base + "/battle/info" }
func (t Topics) BattleMove() string { return t.base + "/battle/move" }
