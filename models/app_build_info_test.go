// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.False(t, info.HasVersion())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	info := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	info.Print(&buf)

	assert.True(t, info.HasVersion())
	assert.Equal(t, "Build version: 1.2.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", buf.String())
}
