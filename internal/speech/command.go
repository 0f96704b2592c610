package speech

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// CommandEngine speaks through a host program: espeak-ng, espeak or say.
type CommandEngine struct {
	program string
	say     bool

	voicesOnce sync.Once
	voices     []Voice

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

var candidates = []string{"espeak-ng", "espeak", "say"}

// NewCommandEngine resolves command on PATH. An empty command tries the
// known programs in order. The engine is unavailable if nothing resolves.
func NewCommandEngine(command string) *CommandEngine {
	names := candidates
	if command != "" {
		names = []string{command}
	}
	for _, name := range names {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return &CommandEngine{program: path, say: filepath.Base(path) == "say"}
	}
	return &CommandEngine{}
}

func (e *CommandEngine) Available() bool { return e.program != "" }

// Program returns the resolved engine path, empty when unavailable.
func (e *CommandEngine) Program() string { return e.program }

func (e *CommandEngine) Voices() []Voice {
	e.voicesOnce.Do(func() {
		if !e.Available() {
			return
		}
		var out []byte
		var err error
		if e.say {
			out, err = exec.Command(e.program, "-v", "?").Output()
		} else {
			out, err = exec.Command(e.program, "--voices").Output()
		}
		if err != nil {
			return
		}
		if e.say {
			e.voices = parseSayVoices(out)
		} else {
			e.voices = parseEspeakVoices(out)
		}
	})
	return e.voices
}

func (e *CommandEngine) Speak(u Utterance) error {
	if !e.Available() {
		return ErrUnsupported
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked()

	var args []string
	if u.Voice != nil && u.Voice.ID != "" {
		args = append(args, "-v", u.Voice.ID)
	}
	if !e.say {
		args = append(args, "--stdin")
	}

	cmd := exec.Command(e.program, args...)
	cmd.Stdin = strings.NewReader(u.Text)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", filepath.Base(e.program), err)
	}

	done := make(chan struct{})
	e.cmd, e.done = cmd, done
	go func() {
		_ = cmd.Wait()
		close(done)
		e.mu.Lock()
		if e.cmd == cmd {
			e.cmd, e.done = nil, nil
		}
		e.mu.Unlock()
	}()
	return nil
}

func (e *CommandEngine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked()
}

func (e *CommandEngine) cancelLocked() {
	if e.cmd == nil {
		return
	}
	_ = e.cmd.Process.Kill()
	<-e.done
	e.cmd, e.done = nil, nil
}

// Speaking reports whether an utterance is playing.
func (e *CommandEngine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cmd != nil
}

// Wait blocks until the active utterance finishes or is cancelled.
func (e *CommandEngine) Wait() {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done != nil {
		<-done
	}
}

// parseEspeakVoices reads `espeak-ng --voices` output:
//
//	Pty Language       Age/Gender VoiceName          File        Other Languages
//	 5  hi              --/M      Hindi              inc/hi
func parseEspeakVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		voices = append(voices, Voice{
			ID:     fields[1],
			Name:   strings.ReplaceAll(fields[3], "_", " "),
			Locale: CanonicalLocale(fields[1]),
		})
	}
	return voices
}

// parseSayVoices reads `say -v ?` output:
//
//	Lekha               hi_IN    # नमस्ते, मेरा नाम लेखा है।
func parseSayVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		locale := fields[len(fields)-1]
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), locale))
		voices = append(voices, Voice{ID: name, Name: name, Locale: CanonicalLocale(locale)})
	}
	return voices
}

// CanonicalLocale normalizes a locale to BCP 47 casing: "en_us" and
// "en-us" both become "en-US".
func CanonicalLocale(s string) string {
	parts := strings.Split(strings.ReplaceAll(s, "_", "-"), "-")
	for i, p := range parts {
		switch {
		case i == 0:
			parts[i] = strings.ToLower(p)
		case len(p) == 2:
			parts[i] = strings.ToUpper(p)
		case len(p) == 4:
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		default:
			parts[i] = strings.ToLower(p)
		}
	}
	return strings.Join(parts, "-")
}
