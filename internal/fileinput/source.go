package fileinput

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// Source is the complete text of one named input unit.
type Source struct {
	Name string
	Data []byte
}

// Named returns a Source around an in-memory string.
func Named(name, text string) Source { return Source{name, []byte(text)} }

// Open reads the file at path, naming the Source after the path.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read reads all of r; the Source is named by r's Name() method if it has one.
func Read(r io.Reader) (Source, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("cannot read %v: %w", nameOf(r), err)
	}
	return Source{nameOf(r), data}, nil
}

// Start returns the position of the first byte of src.
func (src Source) Start() Position { return Start(src.Name) }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
