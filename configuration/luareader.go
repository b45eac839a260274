// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/knowledged/fault"
)

// ParseConfigurationFile - run a Lua file and copy the table it
// returns into config, which must point to a struct
//
// each entry of variables becomes a Lua global string; fields the
// table does not mention keep their existing values
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {
	v := reflect.ValueOf(config)
	if reflect.Ptr != v.Kind() || v.IsNil() || reflect.Struct != v.Elem().Kind() {
		return fault.InvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	table, err := evaluate(L, fileName, variables)
	if nil != err {
		return err
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	})
	return mapper.Map(table, config)
}

// evaluate - the table left on top of the stack by the file
//
// arg[0] holds the file name as it would for a standalone script
func evaluate(L *lua.LState, fileName string, variables map[string]string) (*lua.LTable, error) {
	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	for name, value := range variables {
		L.SetGlobal(name, lua.LString(value))
	}

	if err := L.DoFile(fileName); nil != err {
		return nil, err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fault.ConfigurationNotTable
	}
	return table, nil
}
