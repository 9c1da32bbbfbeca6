package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phenrril/ritushop/internal/domain"
)

func TestSellerOnly(t *testing.T) {
	p := SellerOnly("ritu_beauty_001")

	assert.True(t, p(domain.UserRecord{SellerID: "ritu_beauty_001"}))
	assert.False(t, p(domain.UserRecord{SellerID: "someone_else"}))
	assert.False(t, p(domain.UserRecord{}))
}

func TestSellerOnlyEmptyConfiguredIDMatchesNobody(t *testing.T) {
	p := SellerOnly("")
	assert.False(t, p(domain.UserRecord{SellerID: ""}))
}
