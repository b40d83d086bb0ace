// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ActivatedEnv builds the environment map for processes running inside the
// virtual environment. It starts from the host environ and layers the
// activation on top:
//
//   - PATH gains the user's local bin directory (where the uv installer
//     places the binary) and the venv's bin directory, in front.
//   - VIRTUAL_ENV points at the venv so uv and pip target it.
//   - PYTHONHOME is dropped; it would override the venv's interpreter paths.
//
// The launcher's own process environment is left untouched; callers pass the
// returned map explicitly to each child process.
func ActivatedEnv(environ []string, venvDir string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		idx := strings.IndexByte(entry, '=')
		if idx <= 0 {
			continue
		}
		env[entry[:idx]] = entry[idx+1:]
	}

	delete(env, "PYTHONHOME")
	env["VIRTUAL_ENV"] = venvDir

	var prepends []string
	if home := homeDir(env); home != "" {
		prepends = append(prepends, filepath.Join(home, ".local", "bin"))
	}
	prepends = append(prepends, VenvBinDir(venvDir))

	key := pathKey(env)
	path := env[key]
	for i := len(prepends) - 1; i >= 0; i-- {
		if path == "" {
			path = prepends[i]
			continue
		}
		path = prepends[i] + string(os.PathListSeparator) + path
	}
	env[key] = path

	return env
}

// EnvToSlice converts an environment map to the KEY=VALUE slice form
// expected by exec.Cmd and the shell interpreter.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}

// LookPathEnv searches for an executable named name in the PATH of the given
// environment map, without consulting the process's own PATH.
func LookPathEnv(env map[string]string, name string) (string, bool) {
	if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".exe") {
		name += ".exe"
	}
	for _, dir := range filepath.SplitList(env[pathKey(env)]) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// pathKey returns the name of the PATH variable in env. Windows environments
// commonly carry "Path"; everything else uses "PATH".
func pathKey(env map[string]string) string {
	if runtime.GOOS == "windows" {
		for k := range env {
			if strings.EqualFold(k, "PATH") {
				return k
			}
		}
	}
	return "PATH"
}

func homeDir(env map[string]string) string {
	if home := env["HOME"]; home != "" {
		return home
	}
	if runtime.GOOS == "windows" {
		return env["USERPROFILE"]
	}
	return ""
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}
