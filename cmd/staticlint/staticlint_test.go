package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOSExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OSExitAnalyzer, "exitmain")
}

func TestBookmarkKeyAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), BookmarkKeyAnalyzer, "keys")
}
