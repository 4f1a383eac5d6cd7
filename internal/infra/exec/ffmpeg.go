package exec

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// FFmpegInstalled checks that the ffmpeg binary is reachable on PATH.
func FFmpegInstalled() error {
	cmd := exec.Command("ffmpeg", "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}
	return nil
}

// RunFFmpeg executes ffmpeg with the given arguments and a hard timeout.
// Returns combined output and error.
func RunFFmpeg(timeout time.Duration, args ...string) ([]byte, error) {
	if err := FFmpegInstalled(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return output, fmt.Errorf("ffmpeg timed out after %v", timeout)
	}
	if err != nil {
		return output, fmt.Errorf("ffmpeg failed: %w: %s", err, string(output))
	}
	return output, nil
}
