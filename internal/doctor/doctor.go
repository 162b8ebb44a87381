// Package doctor runs readiness diagnostics for config, letter data, clips, and audio output.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jozefcuryllo/learn-thai/internal/audio"
	"github.com/jozefcuryllo/learn-thai/internal/catalog"
	"github.com/jozefcuryllo/learn-thai/internal/config"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// probeSink is swapped in tests to avoid a live Pulse server.
var probeSink = audio.Probe

// maxMissingListed bounds how many missing clip keys are named in one message.
const maxMissingListed = 5

// Run executes config, data, and audio checks.
func Run(ctx context.Context, cfg config.Loaded, cat *catalog.Catalog) Report {
	checks := []Check{}

	message := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		message = fmt.Sprintf("%q not found; using defaults", cfg.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: message})

	checks = append(checks, Check{
		Name:    "catalog",
		Pass:    true,
		Message: fmt.Sprintf("%d letters (%d consonants, %d vowels)", cat.Len(), cat.Consonants(), cat.Vowels()),
	})

	audioCfg := cfg.Config.Audio
	if !audioCfg.Enable {
		checks = append(checks, Check{Name: "audio", Pass: true, Message: "disabled by audio.enable=false"})
		return Report{Checks: checks}
	}

	dirCheck := checkAudioDir(audioCfg)
	checks = append(checks, dirCheck)
	if dirCheck.Pass {
		checks = append(checks, checkResources(audioCfg, cat))
	}

	if len(audioCfg.PlayerCmd.Argv) > 0 {
		checks = append(checks, checkCommand(audioCfg.PlayerCmd.Argv, "audio.player_cmd"))
	} else {
		checks = append(checks, checkOutput(ctx, audioCfg))
	}

	return Report{Checks: checks}
}

// checkAudioDir validates that the clip directory exists.
func checkAudioDir(cfg config.AudioConfig) Check {
	dir := audio.ResourcePath(cfg.Dir, "", "")
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Check{Name: "audio.dir", Pass: false, Message: fmt.Sprintf("%q does not exist", dir)}
		}
		return Check{Name: "audio.dir", Pass: false, Message: err.Error()}
	}
	if !info.IsDir() {
		return Check{Name: "audio.dir", Pass: false, Message: fmt.Sprintf("%q is not a directory", dir)}
	}
	return Check{Name: "audio.dir", Pass: true, Message: fmt.Sprintf("found %q", dir)}
}

// checkResources verifies that every letter's clip honors the naming convention.
func checkResources(cfg config.AudioConfig, cat *catalog.Catalog) Check {
	var missing []string
	for _, letter := range cat.Letters() {
		path := audio.ResourcePath(cfg.Dir, letter.AudioKey(), cfg.Extension)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, letter.AudioKey())
		}
	}

	if len(missing) == 0 {
		return Check{Name: "audio.clips", Pass: true, Message: fmt.Sprintf("all %d clips present", cat.Len())}
	}

	listed := missing
	suffix := ""
	if len(listed) > maxMissingListed {
		listed = listed[:maxMissingListed]
		suffix = ", ..."
	}
	return Check{
		Name:    "audio.clips",
		Pass:    false,
		Message: fmt.Sprintf("%d of %d clips missing: %s%s", len(missing), cat.Len(), strings.Join(listed, ", "), suffix),
	}
}

// checkOutput resolves the configured output sink on the live Pulse server.
func checkOutput(ctx context.Context, cfg config.AudioConfig) Check {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	device, err := probeSink(probeCtx, cfg.Output)
	if err != nil {
		return Check{Name: "audio.output", Pass: false, Message: err.Error()}
	}
	return Check{Name: "audio.output", Pass: true, Message: fmt.Sprintf("selected %q", device.ID)}
}

// checkCommand validates that argv contains a runnable command.
func checkCommand(argv []string, name string) Check {
	if len(argv) == 0 {
		return Check{Name: name, Pass: false, Message: "command is empty"}
	}
	return checkBinary(argv[0], fmt.Sprintf("%s command is available", name))
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}
