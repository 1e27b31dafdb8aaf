package bench

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	GeneratorRandom = "random"
	GeneratorUUID   = "uuid"
)

const charset = "abcdefghijklmnopqrstuvwxyz" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func Generators() []string {
	return []string{GeneratorRandom, GeneratorUUID}
}

// Generator produces benchmark items.
type Generator interface {
	Next() []byte
}

// NewGenerator returns the named generator drawing from a source seeded with seed.
// Names are checked by Config.Validate.
func NewGenerator(name string, seed int64, maxLength int) Generator {
	rnd := rand.New(rand.NewSource(seed))
	if name == GeneratorUUID {
		return uuidGenerator{rnd: rnd}
	}
	return &randomGenerator{rnd: rnd, maxLength: maxLength}
}

type randomGenerator struct {
	rnd       *rand.Rand
	maxLength int
}

// Next returns an alphanumeric string of 1 to maxLength bytes.
func (g *randomGenerator) Next() []byte {
	b := make([]byte, 1+g.rnd.Intn(g.maxLength))
	for i := range b {
		b[i] = charset[g.rnd.Intn(len(charset))]
	}
	return b
}

type uuidGenerator struct {
	rnd *rand.Rand
}

func (g uuidGenerator) Next() []byte {
	// a *rand.Rand never fails to read
	id, _ := uuid.NewRandomFromReader(g.rnd)
	return []byte(id.String())
}
