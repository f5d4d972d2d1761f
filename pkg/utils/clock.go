package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockSeconds converts a wall-clock string ("HH:MM:SS" or "HH:MM") to
// seconds from midnight.
func ClockSeconds(clock string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}

	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("invalid clock value: %q", clock)
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("clock value out of range: %q", clock)
	}

	return float64(hour*3600 + minute*60 + second), nil
}

// NormalizeClock rewrites loose device clock strings ("8:5:3", "9:30") into
// canonical "HH:MM:SS" form. Loggers in the field pad inconsistently.
func NormalizeClock(clock string) (string, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("time must be in HH:MM:SS format")
	}

	nums := make([]int, 0, 3)
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("time must be in HH:MM:SS format")
		}
		nums = append(nums, n)
	}
	if len(nums) == 2 {
		nums = append(nums, 0)
	}

	if nums[0] < 0 || nums[0] > 23 || nums[1] < 0 || nums[1] > 59 || nums[2] < 0 || nums[2] > 59 {
		return "", fmt.Errorf("time must be in HH:MM:SS format")
	}

	return fmt.Sprintf("%02d:%02d:%02d", nums[0], nums[1], nums[2]), nil
}

// NormalizeDate converts the device date format "YYYY:MM:DD" to ISO
// "YYYY-MM-DD".
func NormalizeDate(date string) (string, error) {
	parts := strings.Split(strings.TrimSpace(date), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("date must be in YYYY:MM:DD format")
	}

	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("date must be in YYYY:MM:DD format")
	}
	if year < 1000 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("date must be in YYYY:MM:DD format")
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}
