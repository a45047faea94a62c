package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	name   string
	city   *string
	status string
	active bool
}

func str(s string) *string { return &s }

func sample() []row {
	return []row{
		{name: "Asha Agrawal", city: str("Jabalpur"), status: "pending", active: true},
		{name: "Ravi Gupta", city: str("Bhopal"), status: "approved", active: false},
		{name: "Meena", city: nil, status: "pending", active: false},
		{name: "JABALPUR Samiti", city: str("Indore"), status: "rejected", active: true},
	}
}

func TestFilterSubsetProperty(t *testing.T) {
	rows := sample()
	queries := []string{"", "jab", "AGRAWAL", "xyz", "a"}
	statuses := []string{"", All, "pending", "approved", "rejected"}
	flags := []string{All, "on", "off"}

	for _, q := range queries {
		for _, st := range statuses {
			for _, fl := range flags {
				got := Filter(rows,
					Search(q, func(r row) string { return r.name }, func(r row) string { return Str(r.city) }),
					Match(st, func(r row) string { return r.status }),
					Flag(fl, "on", "off", func(r row) bool { return r.active }),
				)
				assert.LessOrEqual(t, len(got), len(rows))
				for _, r := range got {
					assert.Contains(t, rows, r)
					if q != "" {
						lq := strings.ToLower(q)
						assert.True(t, strings.Contains(strings.ToLower(r.name), lq) || strings.Contains(strings.ToLower(Str(r.city)), lq))
					}
					if st != "" && st != All {
						assert.Equal(t, st, r.status)
					}
					if fl == "on" {
						assert.True(t, r.active)
					}
					if fl == "off" {
						assert.False(t, r.active)
					}
				}
			}
		}
	}
}

func TestFilterDoesNotMutateRaw(t *testing.T) {
	rows := sample()
	before := append([]row(nil), rows...)
	_ = Filter(rows, Match("approved", func(r row) string { return r.status }))
	assert.Equal(t, before, rows)
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	got := Filter(sample(), Search("jabalpur", func(r row) string { return r.name }, func(r row) string { return Str(r.city) }))
	assert.Len(t, got, 2)
}

func TestMatchFold(t *testing.T) {
	rows := []row{{name: "a", status: "Male"}, {name: "b", status: "female"}}
	got := Filter(rows, MatchFold("male", func(r row) string { return r.status }))
	assert.Equal(t, []row{{name: "a", status: "Male"}}, got)
}

func TestApplyCounts(t *testing.T) {
	res := Apply(sample(), Match("pending", func(r row) string { return r.status }))
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.Filtered)
	assert.Len(t, res.Items, 2)
}
