// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
)

// Synth is a native synthesizer instance.
//
// Every method issues its native call and, on failure, reads the error slot
// while still holding the instance lock, so concurrent callers cannot
// overwrite the message in between.
type Synth struct {
	mu     sync.Mutex
	native Native
	logger *log.Logger

	// scopes holds one scope per font id handed out through a ref.
	scopes map[ffi.FontID]*font.Scope
	// channels bounds the preset each channel owns. The library frees that
	// preset whenever the channel's program changes.
	channels map[int32]*font.Scope
}

// Option configures a Synth.
type Option func(*Synth)

// WithLogger sends font lifecycle messages to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Synth) {
		if l != nil {
			s.logger = l
		}
	}
}

// New wraps a native instance. The Synth takes ownership and deletes it on
// Close.
func New(native Native, opts ...Option) *Synth {
	s := &Synth{
		native:   native,
		logger:   log.New(io.Discard, "", 0),
		scopes:   make(map[ffi.FontID]*font.Scope),
		channels: make(map[int32]*font.Scope),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SampleRate returns the output rate of the instance in Hz, or 0 once the
// instance is closed.
func (s *Synth) SampleRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0
	}

	return s.native.SampleRate()
}

// Write renders len(left) frames of stereo output.
func (s *Synth) Write(left, right []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.WriteFloat(left, right))
}

// Close invalidates every ref handed out and deletes the native instance.
// Close is idempotent. Afterwards every method fails with ErrClosed or
// reports absence.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return nil
	}

	for id := range s.scopes {
		s.dropScope(id)
	}
	s.dropChannels()

	s.native.Delete()
	s.native = nil

	return nil
}

// scopeFor returns the scope of font id, creating it on first use. Callers
// hold s.mu.
func (s *Synth) scopeFor(id ffi.FontID) *font.Scope {
	sc, ok := s.scopes[id]
	if !ok {
		sc = font.NewScope(fmt.Sprintf("font %d", id))
		s.scopes[id] = sc
	}

	return sc
}

// dropScope closes the scope of font id. Callers hold s.mu.
func (s *Synth) dropScope(id ffi.FontID) {
	if sc, ok := s.scopes[id]; ok {
		sc.Close()
		delete(s.scopes, id)
	}
}

// channelScope returns the scope of the preset currently owned by ch. Callers
// hold s.mu.
func (s *Synth) channelScope(ch int32) *font.Scope {
	sc, ok := s.channels[ch]
	if !ok {
		sc = font.NewScope(fmt.Sprintf("channel %d preset", ch))
		s.channels[ch] = sc
	}

	return sc
}

// dropChannel closes the preset scope of ch. Callers hold s.mu.
func (s *Synth) dropChannel(ch int32) {
	if sc, ok := s.channels[ch]; ok {
		sc.Close()
		delete(s.channels, ch)
	}
}

// dropChannels closes the preset scope of every channel. Callers hold s.mu.
func (s *Synth) dropChannels() {
	for ch := range s.channels {
		s.dropChannel(ch)
	}
}
