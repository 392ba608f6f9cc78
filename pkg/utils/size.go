package utils

import "os"

// BytesPerMB is the IEC megabyte used for every size comparison.
const BytesPerMB = 1024 * 1024

func BytesToMB(n int64) float64 {
	return float64(n) / BytesPerMB
}

func FileSizeMB(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return BytesToMB(info.Size()), nil
}
