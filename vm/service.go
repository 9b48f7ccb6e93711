// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
)

// Name is the service namespace clients address methods under.
const Name = "snakevm"

// CreateHandlers builds the HTTP handlers the daemon mounts, keyed by
// endpoint path.
func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(NewPublicService(vm), Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: server,
	}, nil
}
