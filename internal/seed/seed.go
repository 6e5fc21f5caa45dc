// Package seed provides the demo user set and bulk-load file parsing for the
// presentation layer. The engine itself does not validate user payloads.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

// Users returns the built-in demo profiles.
func Users() []model.User {
	return []model.User{
		{ID: 1, FirstName: "Alice", LastName: "Smith", Description: "Loves hiking and music."},
		{ID: 2, FirstName: "Bob", LastName: "Johnson", Description: "Coffee enthusiast."},
		{ID: 3, FirstName: "Carol", LastName: "Williams", Description: "Bookworm and painter."},
		{ID: 4, FirstName: "David", LastName: "Brown", Description: "Tech geek and foodie."},
		{ID: 5, FirstName: "Emma", LastName: "Jones", Description: "Yoga instructor and travel blogger."},
		{ID: 6, FirstName: "Frank", LastName: "Garcia", Description: "Amateur photographer and dog lover."},
		{ID: 7, FirstName: "Grace", LastName: "Miller", Description: "Professional chef and marathon runner."},
		{ID: 8, FirstName: "Henry", LastName: "Davis", Description: "Software engineer and guitar player."},
		{ID: 9, FirstName: "Ivy", LastName: "Rodriguez", Description: "Fashion designer with a passion for vintage."},
		{ID: 10, FirstName: "Jack", LastName: "Wilson", Description: "Financial analyst and weekend hiker."},
	}
}

// LoadFile reads a user list from a YAML or JSON array. JSON parses through
// the YAML decoder.
func LoadFile(path string) ([]model.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var users []model.User
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users file: %w", err)
	}
	return users, nil
}
