package textutils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fried Rice", "fried rice"},
		{"  EGG ", "egg"},
		{"CRÈME", "crème"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Fried Rice", "fried rice"))
	assert.True(t, EqualFold("Crème", "CRÈME"))
	assert.False(t, EqualFold("rice", "rice noodles"))
}

func TestSplitTrimmed(t *testing.T) {
	assert.Equal(t, []string{"egg", "rice", "carrot"}, SplitTrimmed(" egg ; rice;carrot ;", ";"))
	assert.Empty(t, SplitTrimmed("", ";"))
	assert.Empty(t, SplitTrimmed(" ; ;  ", ";"))
}

func TestFold_ConcurrentCallers(t *testing.T) {
	inputs := map[string]string{
		"Fried Rice": "fried rice",
		"CRÈME":      "crème",
		" Egg ":      "egg",
	}

	var wg sync.WaitGroup
	results := make(chan bool, 300)
	for i := 0; i < 100; i++ {
		for in, want := range inputs {
			wg.Add(1)
			go func(in, want string) {
				defer wg.Done()
				results <- Fold(in) == want
			}(in, want)
		}
	}
	wg.Wait()
	close(results)

	for ok := range results {
		assert.True(t, ok)
	}
}
