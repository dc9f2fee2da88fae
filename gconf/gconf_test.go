package gconf

import (
	"encoding/json"
	"testing"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/store"
)

type testConf struct {
	Name string `json:"name"`
}

func (c *testConf) Marshal() ([]byte, error) {
	return []byte(c.Name), nil
}

func (c *testConf) Unmarshal(raw []byte) error {
	c.Name = string(raw)
	return nil
}

func (c *testConf) Validate() error {
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	if err := Save(db, "mypkg", &testConf{Name: "alpha"}); err != nil {
		t.Fatalf("save: %+v", err)
	}

	var got testConf
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("load: %+v", err)
	}
	if got.Name != "alpha" {
		t.Fatalf("want alpha, got %q", got.Name)
	}
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()
	if err := Save(db, "mypkg", &testConf{}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want ErrEmpty, got %+v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var got testConf
	if err := Load(db, "missing", &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want ErrNotFound, got %+v", err)
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := tide.Options{
		"conf": json.RawMessage(`{"mypkg": {"name": "beta"}}`),
	}

	var conf testConf
	if err := InitConfig(db, opts, "mypkg", &conf); err != nil {
		t.Fatalf("init config: %+v", err)
	}

	var got testConf
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("load: %+v", err)
	}
	if got.Name != "beta" {
		t.Fatalf("want beta, got %q", got.Name)
	}
}
