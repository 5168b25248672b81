//go:build e2e && unix

package main

import (
	"testing"
	"time"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startReady(t)
	done := tf.Wait()

	_ = tf.Quit()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean exit, got %v", err)
		}
		return
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		_ = tf.SendCtrlC()
	}

	select {
	case err := <-done:
		t.Errorf("exited only after Ctrl+C (err: %v)", err)
	case <-time.After(750 * time.Millisecond):
		t.Error("Application did not exit within total timeout")
		tf.DumpTailOnFail(4096)
	}
}

func TestQuitIgnoredWhileTyping(t *testing.T) {
	t.Parallel()
	tf := startReady(t)
	done := tf.Wait()

	_ = tf.SendKeys("/")
	_ = tf.Type("q")

	select {
	case err := <-done:
		t.Fatalf("app exited while editing the query: %v", err)
	case <-time.After(500 * time.Millisecond):
	}

	_ = tf.SendEsc()
	time.Sleep(50 * time.Millisecond)
	_ = tf.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("Application did not exit after leaving the query field")
	}
}
