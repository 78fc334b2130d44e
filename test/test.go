package test

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test runs the ginkgo suite of the calling package, named after that package.
func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, suiteName(getFrameName(2)))
}

// LoadFixture reads a file relative to the directory of the running test.
func LoadFixture(relativePath string) ([]byte, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return os.ReadFile(filepath.Join(wd, filepath.FromSlash(relativePath)))
}

func suiteName(frameName string) string {
	if matches := externalTestPackageRegexp.FindStringSubmatch(frameName); matches != nil {
		return matches[1]
	}
	// Internal test packages keep the package path as is
	if i := strings.LastIndex(frameName, "."); i > 0 {
		return frameName[:i]
	}
	return frameName
}

func getFrameName(skip int) string {
	var frameName string
	if pc, _, _, ok := runtime.Caller(skip); ok {
		frameName = runtime.FuncForPC(pc).Name()
	}
	return frameName
}

var externalTestPackageRegexp = regexp.MustCompile("^(.+?)(?:_test)[^/]+$")
