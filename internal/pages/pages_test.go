package pages

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
    tests := []struct {
        name         string
        instructions string
        want         []Group
    }{
        {"single page", "5", []Group{{5}}},
        {"single range", "1-3", []Group{{1, 2, 3}}},
        {"range then page", "1-3,5", []Group{{1, 2, 3}, {5}}},
        {"whitespace around tokens", " 1-3 , 5-7 , 10 ", []Group{{1, 2, 3}, {5, 6, 7}, {10}}},
        {"degenerate range", "4-4", []Group{{4}}},
        {"order preserved", "7,2-3,1", []Group{{7}, {2, 3}, {1}}},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            got, err := Parse(tt.instructions)
            require.NoError(t, err)
            assert.Equal(t, tt.want, got)
        })
    }
}

func TestParseErrors(t *testing.T) {
    tests := []struct {
        name         string
        instructions string
        wantMsg      string
    }{
        {"range starting at zero", "0-2", "Invalid range: 0-2"},
        {"descending range", "3-1", "Invalid range: 3-1"},
        {"page zero", "0", "Invalid page number: 0"},
        {"non numeric page", "abc", "Invalid page number: abc"},
        {"non numeric range endpoint", "1-x", "Invalid range: 1-x"},
        {"multi dash token", "1-2-3", "Invalid range: 1-2-3"},
        {"empty token", "1,,3", "Invalid page number: "},
        {"empty string", "", "Invalid page number: "},
        {"bad token after valid ones", "1-3,0", "Invalid page number: 0"},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            groups, err := Parse(tt.instructions)
            require.Error(t, err)
            assert.Nil(t, groups)
            assert.EqualError(t, err, tt.wantMsg)

            var perr *ParseError
            require.ErrorAs(t, err, &perr)
        })
    }
}

func TestParseErrorKeepsToken(t *testing.T) {
    _, err := Parse("1-3, 9-5")
    var perr *ParseError
    require.ErrorAs(t, err, &perr)
    assert.Equal(t, "9-5", perr.Token)
}
