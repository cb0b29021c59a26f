package slurm

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpandHostlist expands a compressed Slurm hostlist such as
// "nid[00120-00122,00125],login1" into individual host names, preserving
// any zero padding in the numeric ranges.
func ExpandHostlist(list string) ([]string, error) {
	var hosts []string
	for _, part := range splitHostlist(list) {
		expanded, err := expandPart(part)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, expanded...)
	}
	return hosts, nil
}

// splitHostlist splits on commas that sit outside bracket expressions
func splitHostlist(list string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range list {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	if start < len(list) {
		parts = append(parts, list[start:])
	}
	return parts
}

func expandPart(part string) ([]string, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return nil, nil
	}

	lb := strings.IndexByte(part, '[')
	if lb < 0 {
		return []string{part}, nil
	}
	rb := strings.IndexByte(part, ']')
	if rb < lb {
		return nil, fmt.Errorf("malformed hostlist expression: %s", part)
	}

	prefix := part[:lb]
	suffix := part[rb+1:]

	var hosts []string
	for _, rng := range strings.Split(part[lb+1:rb], ",") {
		lo, hi := rng, rng
		if dash := strings.IndexByte(rng, '-'); dash >= 0 {
			lo, hi = rng[:dash], rng[dash+1:]
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("malformed hostlist range %q in %s", rng, part)
		}
		end, err := strconv.Atoi(hi)
		if err != nil || end < start {
			return nil, fmt.Errorf("malformed hostlist range %q in %s", rng, part)
		}
		width := len(lo)
		for n := start; n <= end; n++ {
			hosts = append(hosts, fmt.Sprintf("%s%0*d%s", prefix, width, n, suffix))
		}
	}
	return hosts, nil
}
