// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package main

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/fluidfont/pcm"
)

func play(src pcm.Source) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: src.Channels(),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(&sourceReader{src: src})
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(20 * time.Millisecond)
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playing: %w", err)
	}

	return nil
}
