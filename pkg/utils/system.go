package utils

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ServerLoad는 시스템 자원 사용 현황 요약입니다
type ServerLoad struct {
	CpuUsage    float64
	MemoryUsage float64
	Load        float64
	Capacity    float64
	IsHealthy   bool
}

var (
	systemMu       sync.Mutex
	lastSampleTime time.Time
	lastCpu        float64
	lastMem        float64
)

// systemSampleInterval 내의 재호출은 마지막 측정값을 반환합니다
const systemSampleInterval = 10 * time.Second

// GetSystemMetrics는 CPU와 메모리 사용률을 0~1 범위로 반환합니다
func GetSystemMetrics() (float64, float64) {
	systemMu.Lock()
	defer systemMu.Unlock()

	if !lastSampleTime.IsZero() && time.Since(lastSampleTime) < systemSampleInterval {
		return lastCpu, lastMem
	}

	cpuUsage := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	}

	memUsage := 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		memUsage = vm.UsedPercent / 100.0
	}

	lastSampleTime = time.Now()
	lastCpu = cpuUsage
	lastMem = memUsage
	return cpuUsage, memUsage
}

// CalculateServerLoad는 CPU/메모리 사용률로 부하와 건강 상태를 계산합니다
func CalculateServerLoad(cpuUsage, memoryUsage float64) ServerLoad {
	// CPU와 메모리 사용률의 가중 평균
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	return ServerLoad{
		CpuUsage:    cpuUsage,
		MemoryUsage: memoryUsage,
		Load:        load,
		Capacity:    capacity,
		IsHealthy:   cpuUsage <= 0.9 && memoryUsage <= 0.95,
	}
}
