package factories

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/jaswdr/faker"
)

var fake = faker.New()

// NewFaker returns a faker seeded with seed, or the shared one when seed is 0.
func NewFaker(seed int64) faker.Faker {
	if seed == 0 {
		return fake
	}
	return faker.NewWithSeed(rand.NewSource(seed))
}

// uniqueValue returns base, or the first variant of it not handed out before.
func uniqueValue(cache *sync.Map, base string, variant func(base string, n int) string) string {
	value := base
	counter := 1

	for {
		if _, exists := cache.LoadOrStore(value, true); !exists {
			return value
		}
		value = variant(base, counter)
		counter++
	}
}

func emailVariant(base string, n int) string {
	local, domain, ok := strings.Cut(base, "@")
	if !ok {
		return fmt.Sprintf("%s%d", base, n)
	}
	return fmt.Sprintf("%s+%d@%s", local, n, domain)
}

func suffixVariant(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}

func pickID(f faker.Faker, ids []int64) int64 {
	return ids[f.IntBetween(0, len(ids)-1)]
}
