package smt_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSMT(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "smt behavior suite")
}
