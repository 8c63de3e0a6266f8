package id_generator

import (
	cryptorand "crypto/rand"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// IdGenerator produces unique profile ids. Ids are 32 chars: a
// wall-clock prefix plus 16 random hex chars.
// 00000000000000000000000000000000
// YYYYMMDDHHMMSS00RRRRRRRRRRRRRRRR
// 20210127150059005d5a84d5e6fe11c0
type IdGenerator struct {
	lock sync.Mutex
	rand *rand.Rand

	prefix    string
	prefixSec int64
}

func New() *IdGenerator {
	var seed int64
	seedN, err := cryptorand.Int(cryptorand.Reader, big.NewInt(math.MaxInt64))
	if err == nil {
		seed = seedN.Int64()
	} else {
		seed = time.Now().UnixNano()
	}
	return &IdGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

var (
	flags = "0123456789abcdef"
)

// GenId returns a fresh id. The time prefix is rebuilt lazily when the
// wall second changes; the registry has no start/stop lifecycle to hang
// a refresher goroutine on.
func (g *IdGenerator) GenId() string {
	g.lock.Lock()
	defer g.lock.Unlock()

	now := time.Now()
	if sec := now.Unix(); sec != g.prefixSec || g.prefix == "" {
		g.prefix = now.Format("20060102150405") + "00"
		g.prefixSec = sec
	}

	sb := strings.Builder{}
	sb.WriteString(g.prefix)

	randv := g.rand.Uint64()
	for i := 0; i < 16; i++ {
		sb.WriteByte(flags[randv&0xf])
		randv = randv >> 4
	}
	return sb.String()
}
