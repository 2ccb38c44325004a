// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package common

import (
	"os"

	"github.com/inconshreveable/log15"
)

// SetLogLevel routes all module loggers to stdout at the given level
func SetLogLevel(logLevel string) {
	handler := log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(os.Stdout, log15.TerminalFormat()),
	)
	log15.Root().SetHandler(handler)
}

// SetFileLog mirrors logs to a file, keeping the console at its own level
func SetFileLog(file, logLevel, logConsoleLevel string) {
	if file == "" {
		SetLogLevel(logLevel)
		return
	}
	stdouth := log15.LvlFilterHandler(
		getLevel(logConsoleLevel),
		log15.StreamHandler(os.Stdout, log15.TerminalFormat()),
	)
	fileh := log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.Must.FileHandler(file, log15.LogfmtFormat()),
	)
	log15.Root().SetHandler(log15.MultiHandler(stdouth, fileh))
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		return log15.LvlDebug
	}
	return lvl
}
