package dbg

import (
	"hash/fnv"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pointers printed in logs and test failures are hard to tell apart, so debug
// output labels each diagram object with a pet name like "HappyGopher"
// instead. Names are assigned on first use and kept for the life of the
// process. Nothing is ever forgotten, so keep this out of hot paths.

type registry struct {
	mu    sync.Mutex
	names map[interface{}]string
	title cases.Caser
}

var labels = &registry{
	names: make(map[interface{}]string),
	title: cases.Title(language.English),
}

func init() {
	// Names depend on the order objects are first labeled in, which varies from
	// run to run anyway. Random names keep anyone from relying on them.
	petname.NonDeterministicMode()
}

func (r *registry) name(obj interface{}) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name, ok := r.names[obj]; ok {
		return name
	}
	words := r.title.String(petname.Generate(2, " "))
	name := strings.ReplaceAll(words, " ", "")
	r.names[obj] = name
	return name
}

// Name of an object for debug output. Nil, including a typed nil pointer, is
// "Ø".
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}
	return labels.name(obj)
}

// RGB for an object, hashed from its name.
func Color(obj interface{}) (r, g, b uint8) {
	h := fnv.New32a()
	h.Write([]byte(Name(obj)))
	sum := h.Sum32()
	return uint8(sum >> 16), uint8(sum >> 8), uint8(sum)
}
