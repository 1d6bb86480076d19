package llrb

import "testing"

import "github.com/stretchr/testify/assert"

import "github.com/bnclabs/gosymtab/api"

func TestDefaultsettings(t *testing.T) {
	assert := assert.New(t)

	setts := Defaultsettings()
	assert.Equal(api.MinKeysize, setts.Int64("minkeysize"))
	assert.Equal(api.MaxKeysize, setts.Int64("maxkeysize"))
	assert.Equal(api.MinValsize, setts.Int64("minvalsize"))
	assert.Equal(api.MaxValsize, setts.Int64("maxvalsize"))
	assert.True(setts.Int64("keycapacity") > 0, "keycapacity not positive")
	assert.True(setts.Int64("valcapacity") > 0, "valcapacity not positive")
	assert.Equal("gc", setts.String("allocator"))
}

func TestGetsysmem(t *testing.T) {
	assert := assert.New(t)

	total, used, free := getsysmem()
	assert.True(total >= used, "total lesser than used")
	assert.True(total >= free, "total lesser than free")
}
