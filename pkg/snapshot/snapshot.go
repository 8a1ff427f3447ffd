package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Dir is where snapshots live, relative to the package under test
const Dir = "testdata"

var (
	funcCount   = make(map[string]int)
	funcCountMu sync.Mutex
)

// ValidateSnapshot compares obj, encoded as indented JSON, against the stored snapshot
// The snapshot is named after the calling test and the number of times it has
// called ValidateSnapshot. Depth skips additional frames when called from a helper.
// A missing snapshot is written and the check passes.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(2 + depth)

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, obj)
			return
		}

		panic(err)
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	funcCountMu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	funcCountMu.Unlock()

	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", funcName, call))
}

func create(filename string, obj interface{}) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		panic(err)
	}
}
