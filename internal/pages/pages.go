package pages

import (
    "fmt"
    "strconv"
    "strings"
)

// Group is an ordered run of 1-based page indices destined for one output document.
// Range tokens always expand to contiguous ascending runs; single-page tokens
// produce a one-element group.
type Group []int

// ParseError reports a malformed instruction token.
type ParseError struct {
    Token   string
    Message string
}

func (e *ParseError) Error() string { return e.Message }

func invalidRange(tok string) *ParseError {
    return &ParseError{Token: tok, Message: fmt.Sprintf("Invalid range: %s", tok)}
}

func invalidPage(tok string) *ParseError {
    return &ParseError{Token: tok, Message: fmt.Sprintf("Invalid page number: %s", tok)}
}

// Parse converts an instruction string ("1-3, 5, 8-10") into ordered page groups.
// Tokens split on commas; each trimmed token is either a range "A-B" or a single
// page "N". Only the lower bound (>= 1) is checked here; upper-bound validation
// against the real page count happens in the splitter.
func Parse(instructions string) ([]Group, error) {
    tokens := strings.Split(instructions, ",")
    groups := make([]Group, 0, len(tokens))
    for _, raw := range tokens {
        tok := strings.TrimSpace(raw)
        if strings.Contains(tok, "-") {
            g, err := parseRange(tok)
            if err != nil { return nil, err }
            groups = append(groups, g)
            continue
        }
        n, err := strconv.Atoi(tok)
        if err != nil || n < 1 {
            return nil, invalidPage(tok)
        }
        groups = append(groups, Group{n})
    }
    return groups, nil
}

// parseRange expands "A-B" into the run A..B. Tokens with more than one dash
// ("1-2-3") are rejected outright rather than silently truncated.
func parseRange(tok string) (Group, error) {
    parts := strings.Split(tok, "-")
    if len(parts) != 2 {
        return nil, invalidRange(tok)
    }
    start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
    end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
    if err1 != nil || err2 != nil || start < 1 || start > end {
        return nil, invalidRange(tok)
    }
    g := make(Group, 0, end-start+1)
    for p := start; p <= end; p++ {
        g = append(g, p)
    }
    return g, nil
}
