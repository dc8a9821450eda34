// Integration tests for the interactive menu session.
package integration

import (
	"strings"
	"testing"
)

func TestMenu_AddViewExit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunLarderStdin("1\nmilk\n4\n2\n4\n6\n")

	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", result.ExitCode, result.Stderr)
	}
	for _, want := range []string{
		"Larder:",
		"1) Add item",
		`Item "milk" added (quantity 4, threshold 2).`,
		"NAME",
		"milk",
		"Goodbye!",
	} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("menu output missing %q:\n%s", want, result.Stdout)
		}
	}
}

func TestMenu_EndOfInputExitsZero(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunLarderStdin("")

	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if strings.Contains(result.Stdout, "Goodbye!") {
		t.Error("goodbye printed without an explicit exit choice")
	}
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunLarderStdin("9\n6\n")

	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Stdout, "Invalid choice. Please enter 1-6.") {
		t.Errorf("missing invalid-choice message:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "Goodbye!") {
		t.Error("session did not continue to exit")
	}
}

func TestMenu_FullFlow(t *testing.T) {
	env := NewTestEnv(t)

	script := strings.Join([]string{
		"1", "milk", "10", "2", // add
		"2", "milk", "7", "", // update, blank threshold keeps it
		"5", "milk", // predict, no usage yet
		"3", "milk", // delete
		"4", // view, now empty
		"6", // exit
	}, "\n") + "\n"

	result := env.RunLarderStdin(script)

	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", result.ExitCode, result.Stderr)
	}
	for _, want := range []string{
		"Current: quantity 10, threshold 2",
		`Item "milk" updated: quantity 7, threshold 2, daily use 0.00.`,
		"Not enough usage data yet.",
		`Item "milk" deleted.`,
		"No items in inventory.",
		"Goodbye!",
	} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("menu output missing %q:\n%s", want, result.Stdout)
		}
	}
}

func TestMenu_OperationErrorKeepsSessionAlive(t *testing.T) {
	env := NewTestEnv(t)

	// Deleting an unknown item fails; the session must carry on to exit.
	result := env.RunLarderStdin("3\ndurian\n6\n")

	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Stdout, "Item not found.") {
		t.Errorf("missing not-found message:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "Goodbye!") {
		t.Error("session did not survive the failed operation")
	}
}

func TestMenu_InventoryPersistsAcrossSessions(t *testing.T) {
	env := NewTestEnv(t)

	first := env.RunLarderStdin("1\nmilk\n4\n2\n6\n")
	if first.ExitCode != 0 {
		t.Fatalf("first session exit code = %d\nstderr: %s", first.ExitCode, first.Stderr)
	}

	second := env.RunLarderStdin("4\n6\n")
	if second.ExitCode != 0 {
		t.Fatalf("second session exit code = %d\nstderr: %s", second.ExitCode, second.Stderr)
	}
	if !strings.Contains(second.Stdout, "milk") {
		t.Errorf("item did not survive across sessions:\n%s", second.Stdout)
	}
}
