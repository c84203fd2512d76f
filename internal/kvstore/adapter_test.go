package kvstore_test

import (
	"errors"
	"testing"

	"tasktrack/internal/kvstore"
	"tasktrack/internal/testutil"
)

type item struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type items []item

func (l items) Validate() error {
	for _, it := range l {
		if it.Name == "" {
			return errors.New("empty name")
		}
	}
	return nil
}

func TestLoad_MissingKeyReturnsDefault(t *testing.T) {
	a := kvstore.NewAdapter(testutil.NewFakeStore(), nil, nil)

	got := kvstore.Load(a, "items", items{{Name: "default"}})
	if len(got) != 1 || got[0].Name != "default" {
		t.Errorf("expected default, got %+v", got)
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	store := testutil.NewFakeStore()
	a := kvstore.NewAdapter(store, nil, nil)

	want := items{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	kvstore.Save(a, "items", want)
	if a.Err() != nil {
		t.Fatalf("unexpected save error: %v", a.Err())
	}

	got := kvstore.Load(a, "items", items{})
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLoad_MalformedValuesReturnDefault(t *testing.T) {
	cases := map[string]string{
		"string instead of list": `"hello"`,
		"truncated":              `[{"name":"a"`,
		"unknown field":          `[{"name":"a","count":1,"extra":true}]`,
		"trailing content":       `[] []`,
		"wrong field type":       `[{"name":"a","count":"one"}]`,
		"empty":                  ``,
		"fails validation":       `[{"name":"","count":1}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := testutil.NewFakeStore()
			store.Put("items", raw)
			a := kvstore.NewAdapter(store, nil, nil)

			got := kvstore.Load(a, "items", items{})
			if len(got) != 0 {
				t.Errorf("expected empty default, got %+v", got)
			}
		})
	}
}

func TestLoad_ReadErrorReturnsDefault(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Put("items", `[{"name":"a","count":1}]`)
	store.GetErr = errors.New("disk on fire")
	a := kvstore.NewAdapter(store, nil, nil)

	got := kvstore.Load(a, "items", items{})
	if len(got) != 0 {
		t.Errorf("expected empty default, got %+v", got)
	}
}

func TestSave_WriteErrorIsRecordedNotRaised(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Put("items", `[{"name":"old","count":1}]`)
	store.SetErr = errors.New("quota exceeded")
	a := kvstore.NewAdapter(store, nil, nil)

	kvstore.Save(a, "items", items{{Name: "new"}})

	if a.Err() == nil {
		t.Fatal("expected Err to report the failed write")
	}
	raw, _ := store.Raw("items")
	if raw != `[{"name":"old","count":1}]` {
		t.Errorf("expected previous value to remain, got %q", raw)
	}

	// A later successful write clears the error.
	store.SetErr = nil
	kvstore.Save(a, "items", items{{Name: "new"}})
	if a.Err() != nil {
		t.Errorf("expected Err to be cleared, got %v", a.Err())
	}
}

func TestYAMLCodec_RoundTrip(t *testing.T) {
	store := testutil.NewFakeStore()
	a := kvstore.NewAdapter(store, kvstore.YAMLCodec{}, nil)

	kvstore.Save(a, "items", items{{Name: "a", Count: 3}})
	got := kvstore.Load(a, "items", items{})
	if len(got) != 1 || got[0].Name != "a" || got[0].Count != 3 {
		t.Errorf("unexpected round trip result: %+v", got)
	}
}

func TestYAMLCodec_ScalarReturnsDefault(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Put("items", "just a string\n")
	a := kvstore.NewAdapter(store, kvstore.YAMLCodec{}, nil)

	got := kvstore.Load(a, "items", items{})
	if len(got) != 0 {
		t.Errorf("expected empty default, got %+v", got)
	}
}

func TestCodecByName(t *testing.T) {
	for name, want := range map[string]string{"": "json", "JSON": "json", "yaml": "yaml", "yml": "yaml"} {
		c, err := kvstore.CodecByName(name)
		if err != nil {
			t.Fatalf("CodecByName(%q): %v", name, err)
		}
		if c.Name() != want {
			t.Errorf("CodecByName(%q) = %s, want %s", name, c.Name(), want)
		}
	}

	if _, err := kvstore.CodecByName("toml"); err == nil {
		t.Error("expected error for unsupported codec")
	}
}
