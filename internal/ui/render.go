// Package ui renders the demo's terminal output. Every function returns a
// string so rendering stays testable without a terminal attached.
package ui

import (
	"fmt"
	"strings"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/services/matching"
)

func Card(user model.User) string {
	var b strings.Builder
	b.WriteString("┌──────────────────────────────────────┐\n")
	fmt.Fprintf(&b, "  %s (id %d)\n", user.FullName(), user.ID)
	if user.Description != "" {
		fmt.Fprintf(&b, "  %s\n", user.Description)
	}
	if user.Specialization != "" {
		fmt.Fprintf(&b, "  %s\n", user.Specialization)
	}
	if user.Activity != "" {
		fmt.Fprintf(&b, "  %s\n", user.Activity)
	}
	b.WriteString("└──────────────────────────────────────┘\n")
	b.WriteString("swipe with 'like' or 'dislike'")
	return b.String()
}

func UserList(users []model.User) string {
	if len(users) == 0 {
		return "no users loaded"
	}
	var b strings.Builder
	b.WriteString("Who are you?\n")
	for _, u := range users {
		fmt.Fprintf(&b, "  %d: %s\n", u.ID, u.FullName())
	}
	b.WriteString("pick a profile with 'start <id>'")
	return b.String()
}

func MatchList(items []matching.MatchItem) string {
	if len(items) == 0 {
		return "no matches yet"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your matches (%d):\n", len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.FirstName + " " + item.LastName)
		if name == "" {
			name = fmt.Sprintf("user %d", item.UserID)
		}
		fmt.Fprintf(&b, "  %s (matched %s)\n", name, item.MatchedAt.Format("2006-01-02 15:04:05"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func Help() string {
	return strings.Join([]string{
		"commands:",
		"  users         list profiles available for sign-in",
		"  start <id>    start a session as the given user",
		"  next          show the next candidate",
		"  like          like the current candidate",
		"  dislike       pass on the current candidate",
		"  matches       list your matches",
		"  reset         reset your matches and outgoing swipes",
		"  end           end the session",
		"  quit          exit",
	}, "\n")
}
