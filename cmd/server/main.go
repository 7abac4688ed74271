// ninedraft-server starts an SSH server that gives every connecting client
// its own world. Build:
//
//	go build -o ninedraft-server ./cmd/server
//
// Usage:
//
//	./ninedraft-server [--config ninedraft.yaml]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"ninedraft/internal/config"
	"ninedraft/internal/game"
	internalssh "ninedraft/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	configPath := flag.String("config", "ninedraft.yaml", "Path to the YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	signer := loadOrCreateHostKey(cfg.HostKeyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: func(s gossh.Session) {
			handleSession(cfg, s)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("ninedraft SSH server listening on :%d", cfg.SSHPort)
	log.Printf("Connect:  ssh -p %d -o StrictHostKeyChecking=no localhost", cfg.SSHPort)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation. Sessions may
// arrive concurrently, so screen setup is serialised.
var termMu sync.Mutex

// handleSession runs one player's game over their SSH connection. It
// blocks for the duration of the connection so the session stays open.
func handleSession(cfg config.Config, s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// Determine the terminal type from the session environment.
	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// Create a tcell screen backed by this SSH session.
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(cfg, screen)
	if err != nil {
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		return
	}
	if err := g.Run(); err != nil {
		log.Printf("session %s: %v", s.RemoteAddr(), err)
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "ninedraft server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
