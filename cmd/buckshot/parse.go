package main

import (
	"fmt"
	"strconv"
	"strings"

	"buckshot/internal/domain"
)

// parseShellState accepts the short forms used on the command line as well as
// the wire names.
func parseShellState(s string) (domain.ShellState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live", "l", string(domain.ShellKnownLive):
		return domain.ShellKnownLive, nil
	case "blank", "b", string(domain.ShellKnownBlank):
		return domain.ShellKnownBlank, nil
	case "unknown", "?", "":
		return domain.ShellUnknown, nil
	}
	return "", fmt.Errorf("unknown shell state %q (want live, blank or unknown)", s)
}

func parseShellKind(s string) (domain.ShellKind, error) {
	kind := domain.ShellKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown shell kind %q (want live or blank)", s)
	}
	return kind, nil
}

// parseKnown reads revealed chambers written as "1=live,3=blank".
func parseKnown(s string) (map[int]domain.ShellState, error) {
	marks := make(map[int]domain.ShellState)
	if strings.TrimSpace(s) == "" {
		return marks, nil
	}
	for _, part := range strings.Split(s, ",") {
		pos, state, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mark %q: want POSITION=STATE", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(pos))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid mark %q: position must be a positive integer", part)
		}
		st, err := parseShellState(state)
		if err != nil {
			return nil, fmt.Errorf("invalid mark %q: %w", part, err)
		}
		marks[n] = st
	}
	return marks, nil
}

// parseOpponent reads an opponent written as "id:hp:skill[:name]".
func parseOpponent(s string) (domain.Player, error) {
	fields := strings.SplitN(s, ":", 4)
	if len(fields) < 3 {
		return domain.Player{}, fmt.Errorf("invalid opponent %q: want id:hp:skill[:name]", s)
	}
	nums := make([]int, 3)
	for i, f := range fields[:3] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return domain.Player{}, fmt.Errorf("invalid opponent %q: field %d must be a non-negative integer", s, i+1)
		}
		nums[i] = n
	}
	p := domain.Player{ID: nums[0], HP: nums[1], MaxHP: nums[1], Skill: nums[2]}
	if len(fields) == 4 {
		p.Name = strings.TrimSpace(fields[3])
	}
	return p, nil
}

func checkShellCounts(live, blank int) error {
	if live < 0 || blank < 0 {
		return fmt.Errorf("shell counts must not be negative")
	}
	if live > limits.MaxShellsPerKind || blank > limits.MaxShellsPerKind {
		return fmt.Errorf("at most %d shells of each kind", limits.MaxShellsPerKind)
	}
	return nil
}
