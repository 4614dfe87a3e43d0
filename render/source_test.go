package render

import (
	"errors"
	"testing"
)

func TestSignal(t *testing.T) {
	var s = NewSignal()
	if s.Done() {
		t.Error("signal done before being resolved")
	}
	s.Resolve("x")
	if !s.Done() {
		t.Error("signal not done after being resolved")
	}
	var v, err = s.Get()
	if err != nil {
		t.Error(err)
	}
	if v != "x" {
		t.Errorf("got %v, expected x", v)
	}
}

func TestSignalReject(t *testing.T) {
	var s = NewSignal()
	s.Reject(errors.New("rpc failed"))
	if !s.Done() {
		t.Error("signal not done after being rejected")
	}
	if _, err := s.Get(); err == nil || err.Error() != "rpc failed" {
		t.Errorf("got %v, expected the rejection error", err)
	}
}

func TestSignalFirstWins(t *testing.T) {
	var s = NewSignal()
	s.Resolve(1)
	s.Reject(errors.New("too late"))
	s.Resolve(2)
	var v, err = s.Get()
	if err != nil {
		t.Error(err)
	}
	if v != 1 {
		t.Errorf("got %v, expected the first resolution", v)
	}
}

func TestSignalWait(t *testing.T) {
	var s = NewSignal()
	go s.Resolve(42)
	s.Wait()
	if !s.Done() {
		t.Error("signal not done after Wait returned")
	}
	if v, _ := s.Get(); v != 42 {
		t.Errorf("got %v, expected 42", v)
	}
}
