package constants

import "os"

func GetLibraryPath() string {
	path := os.Getenv("TAB_LIBRARY_PATH")
	if path != "" {
		return path
	}
	return "./tabs.json"
}

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}
