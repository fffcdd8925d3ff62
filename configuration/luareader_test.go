// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nftszn/traderd/configuration"
)

type testDatabase struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Admin         string       `gluamapper:"admin"`
	Collection    string       `gluamapper:"collection"`
	Database      testDatabase `gluamapper:"database"`
	Listen        []string     `gluamapper:"listen"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.admin = "11111111111111111111111111111111"
M.collection = "SZN24"

M.database = {
    directory = "data",
    name = "trader.leveldb"
}

M.listen = {
    "127.0.0.1:2276",
    "[::1]:2276"
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	file, err := ioutil.TempFile("", "test-*.conf")
	assert.Nil(t, err, "temp file error")
	defer os.Remove(file.Name())

	_, err = file.WriteString(sampleConfiguration)
	assert.Nil(t, err, "write error")
	file.Close()

	config := &testConfiguration{
		Database: testDatabase{
			Directory: "default",
			Name:      "default.leveldb",
		},
	}
	err = configuration.ParseConfigurationFile(file.Name(), config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "11111111111111111111111111111111", config.Admin, "wrong admin")
	assert.Equal(t, "SZN24", config.Collection, "wrong collection")
	assert.Equal(t, "data", config.Database.Directory, "wrong database directory")
	assert.Equal(t, "trader.leveldb", config.Database.Name, "wrong database name")
	assert.Equal(t, []string{"127.0.0.1:2276", "[::1]:2276"}, config.Listen, "wrong listen addresses")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent/trader.conf", config)
	assert.NotNil(t, err, "missing file accepted")
}
