// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/statedb"
	"github.com/waykichain/wicc-go/types"
)

// openState opens the state database named by --datadir, applying --conf
// when one is given.
func openState(cmd *cobra.Command) (*statedb.CacheWrapper, dbm.DB, error) {
	if conf, _ := cmd.Flags().GetString("conf"); conf != "" {
		types.SetConfig(types.InitCfg(conf))
	}
	datadir, _ := cmd.Flags().GetString("datadir")
	base, err := dbm.NewGoLevelDB("state", datadir, 16)
	if err != nil {
		return nil, nil, fmt.Errorf("open state db: %w", err)
	}
	return statedb.NewCacheWrapper(base), base, nil
}

func printJSON(v interface{}) {
	result, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(result))
}
