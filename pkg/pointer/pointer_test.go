// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/indiepub/pkg/pointer"
)

func TestPointerHelpers(t *testing.T) {
	var absent *string

	assert.Equal(t, "", pointer.Val(absent))
	assert.Equal(t, "Synthwave", pointer.Val(pointer.To("Synthwave")))
	assert.Nil(t, pointer.Copy(absent))

	original := pointer.To(120)
	duplicate := pointer.Copy(original)
	*duplicate = 90
	assert.Equal(t, 120, *original)
}
