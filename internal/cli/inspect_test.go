package cli

import (
	"encoding/json"
	"strings"
	"testing"

	errs "github.com/matzehuels/dipart/pkg/errors"
)

func TestInspect(t *testing.T) {
	stdout, _, err := execute(t, "inspect", writeFile(t, "attiny412.toml", tinySpec))
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	for _, want := range []string{"ATtiny412", "DIP4", "300mil", "Pin", "Alternates", "VDD", "VCC", "PA7"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("inspect output missing %q:\n%s", want, stdout)
		}
	}
}

func TestInspectJSON(t *testing.T) {
	stdout, _, err := execute(t, "inspect", "--json", writeFile(t, "attiny412.toml", tinySpec))
	if err != nil {
		t.Fatalf("inspect --json error = %v", err)
	}

	var got struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		DIP   int    `json:"dip"`
		Width int    `json:"width"`
		Pins  []struct {
			Number int      `json:"number"`
			Names  []string `json:"names"`
		} `json:"pins"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, stdout)
	}
	if got.Name != "ATtiny412" || got.DIP != 4 || got.Width != 300 {
		t.Errorf("inspect --json = %+v", got)
	}
	if len(got.Pins) != 4 {
		t.Fatalf("len(pins) = %d, want 4", len(got.Pins))
	}
	if names := got.Pins[0].Names; len(names) != 2 || names[0] != "VDD" || names[1] != "VCC" {
		t.Errorf("pin 1 names = %v, want [VDD VCC]", names)
	}
}

func TestInspectInvalid(t *testing.T) {
	_, _, err := execute(t, "inspect", writeFile(t, "bad.toml", "name = \"X\"\ndip = 4\nwidth = 300\n1 = \"A\""))
	if got := errs.UserMessage(err); got != "missing pin 2 definition" {
		t.Errorf("UserMessage() = %q, want %q", got, "missing pin 2 definition")
	}
	if got := ExitCode(err); got != ExitSpec {
		t.Errorf("ExitCode() = %d, want %d", got, ExitSpec)
	}
}
