package lib

import "testing"
import "reflect"
import "encoding/json"

func TestParsecsv(t *testing.T) {
	if outs := Parsecsv(""); outs != nil {
		t.Errorf("unexpected %v", outs)
	}
	ref := []string{"set", "delete", "delmin"}
	if outs := Parsecsv("set, delete ,delmin,"); reflect.DeepEqual(ref, outs) == false {
		t.Errorf("expected %v, got %v", ref, outs)
	}
}

func TestFixbuffer(t *testing.T) {
	if ln := len(Fixbuffer(nil, 10)); ln != 10 {
		t.Errorf("expected %v, got %v", 10, ln)
	} else if ln = len(Fixbuffer(nil, 0)); ln != 0 {
		t.Errorf("expected %v, got %v", 0, ln)
	} else if ln = len(Fixbuffer([]byte{10, 20}, 0)); ln != 0 {
		t.Errorf("expected %v, got %v", 0, ln)
	}
	buffer := make([]byte, 0, 64)
	if x := Fixbuffer(buffer, 32); cap(x) != 64 {
		t.Errorf("expected %v, got %v", 64, cap(x))
	}
}

func TestStr2bytes(t *testing.T) {
	if Str2bytes("") != nil {
		t.Errorf("unexpected byte-slice for empty string")
	}
	if x := Str2bytes("hello world"); string(x) != "hello world" {
		t.Errorf("unexpected %v", x)
	}
}

func TestBytes2str(t *testing.T) {
	if Bytes2str(nil) != "" {
		t.Errorf("unexpected %v", Bytes2str(nil))
	}
	if x := Bytes2str([]byte("hello world")); x != "hello world" {
		t.Errorf("unexpected %v", x)
	}
}

func TestPrettystats(t *testing.T) {
	stats := map[string]interface{}{"n_count": 10, "keymemory": 160}
	for _, pretty := range []bool{false, true} {
		var m map[string]interface{}
		s := Prettystats(stats, pretty)
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			t.Fatalf("unmarshal %q: %v", s, err)
		} else if x := m["n_count"].(float64); x != 10 {
			t.Errorf("expected %v, got %v", 10, x)
		}
	}
}

func BenchmarkStr2bytes(b *testing.B) {
	s := "random number of bytes"
	for i := 0; i < b.N; i++ {
		Str2bytes(s)
	}
}

func BenchmarkBytes2str(b *testing.B) {
	bs := []byte("random number of bytes")
	for i := 0; i < b.N; i++ {
		Bytes2str(bs)
	}
}
