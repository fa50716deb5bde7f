package metrics

import (
	"sync"
	"time"

	"war/game"
)

type BattleRecord struct {
	Match        string
	Turn         int
	Attacker     string
	Defender     string
	AttackerRoll int
	DefenderRoll int
	AttackerWon  bool
	Conquered    bool
	Transferred  int
}

type GameMetric struct {
	Match       string
	Mission     string
	PlayerColor string
	Turns       int
	Battles     int
	Conquests   int
	Won         bool
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

type Collector interface {
	Start(match string)
	AddBattle(turn int, result game.AttackResult)
	Battles() []BattleRecord
	Complete(metric GameMetric) GameMetric
}

type collector struct {
	mu        sync.Mutex
	match     string
	startTime time.Time
	battles   []BattleRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(match string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.match = match
	c.startTime = time.Now()
	c.battles = nil
}

func (c *collector) AddBattle(turn int, result game.AttackResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.battles = append(c.battles, BattleRecord{
		Match:        c.match,
		Turn:         turn,
		Attacker:     result.Attacker,
		Defender:     result.Defender,
		AttackerRoll: result.AttackerRoll,
		DefenderRoll: result.DefenderRoll,
		AttackerWon:  result.AttackerWon,
		Conquered:    result.Conquered,
		Transferred:  result.Transferred,
	})
}

func (c *collector) Battles() []BattleRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]BattleRecord, len(c.battles))
	copy(out, c.battles)
	return out
}

// Complete stamps the timing fields of metric.
func (c *collector) Complete(metric GameMetric) GameMetric {
	c.mu.Lock()
	defer c.mu.Unlock()
	metric.Match = c.match
	metric.StartTime = c.startTime
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(string) {}

func (dummyCollector) AddBattle(int, game.AttackResult) {}

func (dummyCollector) Battles() []BattleRecord {
	return nil
}

func (dummyCollector) Complete(metric GameMetric) GameMetric {
	return metric
}
