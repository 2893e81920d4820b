package video

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProcessError reports a failed ffmpeg invocation with the full command
// line and captured output. Burn-in exports are never retried automatically.
type ProcessError struct {
	Command string
	Output  string
	Err     error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("ffmpeg failed: %v\ncommand: %s", e.Err, e.Command)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ExportJob is a detached caption burn-in process. Completion is observed
// by polling Done; progress by re-reading the ffmpeg progress log. Cancel
// is cooperative: it kills the child and discards the partial output file.
type ExportJob struct {
	cmd          *exec.Cmd
	commandLine  string
	outputPath   string
	progressPath string
	output       bytes.Buffer

	done    chan struct{}
	waitErr error
}

// StartBurnIn launches ffmpeg to render the subtitle file permanently into
// the video frames, copying the audio stream untouched.
func (p *Processor) StartBurnIn(videoPath, subtitlePath, outputPath, progressPath string) (*ExportJob, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	ffmpegPath, err := p.resolvedFFmpeg()
	if err != nil {
		return nil, err
	}

	cmd := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vf":       "subtitles=filename=" + EscapeFilterPath(subtitlePath),
			"c:a":      "copy",
			"progress": progressPath,
			"nostats":  "",
		}).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Compile()

	job := &ExportJob{
		cmd:          cmd,
		commandLine:  strings.Join(cmd.Args, " "),
		outputPath:   outputPath,
		progressPath: progressPath,
		done:         make(chan struct{}),
	}
	cmd.Stdout = &job.output
	cmd.Stderr = &job.output

	if err := cmd.Start(); err != nil {
		return nil, &ProcessError{Command: job.commandLine, Err: err}
	}

	go func() {
		job.waitErr = cmd.Wait()
		close(job.done)
	}()

	return job, nil
}

// Done reports whether the child process has exited.
func (j *ExportJob) Done() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// Err returns the process outcome. Valid only after Done reports true.
func (j *ExportJob) Err() error {
	if j.waitErr == nil {
		return nil
	}
	return &ProcessError{
		Command: j.commandLine,
		Output:  j.output.String(),
		Err:     j.waitErr,
	}
}

// Progress reports completion in percent against the timeline duration.
func (j *ExportJob) Progress(duration float64) float64 {
	return ParseProgress(j.progressPath, duration)
}

// Cancel terminates the child and removes the partial output file, whose
// contents are undefined after an interrupted encode.
func (j *ExportJob) Cancel() error {
	if j.cmd.Process == nil {
		return nil
	}
	if err := j.cmd.Process.Kill(); err != nil && !j.Done() {
		return fmt.Errorf("failed to terminate export process: %w", err)
	}
	<-j.done
	_ = os.Remove(j.outputPath)
	return nil
}
