package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagerShowRequiresProgram(t *testing.T) {
	p := NewPager()

	err := p.Show("some code")
	require.Error(t, err)
	require.Contains(t, err.Error(), "program not set")
}

func TestPagerConfigLeavesScreenAlone(t *testing.T) {
	config := pagerConfig()

	require.False(t, config.IsWriteOnExit)
	require.False(t, config.IsWriteOriginal)
}
