package contentGenerator

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

var (
	Adjectives = []string{"Quick", "Lazy", "Sleepy", "Noisy", "Hungry"}
	Nouns      = []string{"Fox", "Dog", "Cat", "Mouse", "Bear"}

	PasteTemplates = []string{
		"# Welcome to EigenLayer Paste\nThis is a test paste created by the AVS operator.",
		"## Smart Contract Testing\nTesting EigenLayer AVS Pastebin functionality.",
		"### Code Example\n```go\nfunc helloWorld() {\n\tfmt.Println(\"Hello, EigenLayer!\")\n}\n```",
		"#### Documentation\nThis is a sample documentation paste for testing purposes.",
		"##### Test Results\nAll tests passed successfully. System is working as expected.",
	}
)

const pasteFooter = "Generated by: EigenLayer AVS Operator"

// ContentGenerator produces demo task names and paste bodies. It is safe for concurrent use.
type ContentGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewContentGenerator() *ContentGenerator {
	return NewContentGeneratorWithSource(rand.NewPCG(uint64(time.Now().UnixNano()), 0), time.Now)
}

func NewContentGeneratorWithSource(src rand.Source, now func() time.Time) *ContentGenerator {
	return &ContentGenerator{
		rng: rand.New(src),
		now: now,
	}
}

// TaskName returns a name like "QuickFox42": adjective, noun and a number below 1000.
func (cg *ContentGenerator) TaskName() string {
	cg.mu.Lock()
	defer cg.mu.Unlock()
	adjective := Adjectives[cg.rng.IntN(len(Adjectives))]
	noun := Nouns[cg.rng.IntN(len(Nouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, cg.rng.IntN(1000))
}

func (cg *ContentGenerator) PasteContent() string {
	cg.mu.Lock()
	base := PasteTemplates[cg.rng.IntN(len(PasteTemplates))]
	cg.mu.Unlock()
	return fmt.Sprintf("%s\n\nTimestamp: %d\n%s", base, cg.now().Unix(), pasteFooter)
}
