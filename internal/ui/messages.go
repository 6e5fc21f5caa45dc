package ui

import "fmt"

func Welcome(firstName string) string {
	return fmt.Sprintf("Welcome %s!", firstName)
}

func Matched(firstName string) string {
	return fmt.Sprintf("You matched with %s!", firstName)
}

func NoMoreProfiles() string {
	return "No more profiles to show"
}

func SessionEnded() string {
	return "Session ended"
}

func MatchesReset() string {
	return "Matches reset successfully"
}

func DemoDataLoaded(count int) string {
	return fmt.Sprintf("Demo data loaded successfully (%d users)", count)
}

func UnknownCommand(cmd string) string {
	return fmt.Sprintf("Unknown command %q, type 'help' for the command list", cmd)
}
