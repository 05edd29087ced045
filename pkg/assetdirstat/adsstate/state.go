// Package adsstate remembers the last scanned root and selected type between runs.
package adsstate

import (
	"os"
	"path/filepath"

	"github.com/datatug/assetdirstat/pkg/fsutils"
)

const defaultSettingsDir = "~/.assetdirstat"
const stateFileName = "assetdirstat-state.json"

var settingsDirPath = fsutils.ExpandHome(defaultSettingsDir)

type State struct {
	Root        string  `json:"root,omitempty"`
	SelectedExt *string `json:"selected_ext,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(v ...any) {
}

// SetLogErr routes persistence errors to f.
func SetLogErr(f func(v ...any)) {
	if f == nil {
		f = func(v ...any) {}
	}
	logErr = f
}

func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

// GetSelectedExt returns the remembered type selection for root.
func GetSelectedExt(root string) (ext string, ok bool) {
	state, err := GetState()
	if err != nil || state.Root != root || state.SelectedExt == nil {
		return "", false
	}
	return *state.SelectedExt, true
}

// SaveRoot stores root and drops a selection made under another root.
func SaveRoot(root string) {
	saveSettingValue(func(state *State) {
		if state.Root != root {
			state.SelectedExt = nil
		}
		state.Root = root
	})
}

// SaveSelectedExt stores the selected type, nil clears it.
func SaveSelectedExt(ext *string) {
	saveSettingValue(func(state *State) {
		state.SelectedExt = ext
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	err := readJSON(filePath, false, &state)
	if err != nil {
		logErr("adsstate: error reading state file:", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("adsstate: error creating settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("adsstate: settings path is not a directory")
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("adsstate: error writing state file:", err)
		return
	}
}
