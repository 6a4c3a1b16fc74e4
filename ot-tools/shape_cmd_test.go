package main

import (
	"testing"

	"github.com/npillmayer/otshaping/ot"
	"github.com/npillmayer/otshaping/otshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShapeInput(t *testing.T) {
	s, err := parseShapeInput("hello,world", "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
	s, err = parseShapeInput("ignored", "U+1112,U+1161")
	require.NoError(t, err)
	assert.Equal(t, "\u1112\u1161", s)
	_, err = parseShapeInput("", "U+ZZZZ")
	assert.Error(t, err)
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions("-liga", "none")
	require.NoError(t, err)
	assert.Equal(t, otshape.KerningNone, opts.Kerning)
	assert.Equal(t, []otshape.FeatureRange{{Feature: ot.T("liga")}}, opts.Features)
	opts, err = parseOptions("", "")
	require.NoError(t, err)
	assert.Equal(t, otshape.KerningStandard, opts.Kerning)
	_, err = parseOptions("", "sometimes")
	assert.Error(t, err)
}
