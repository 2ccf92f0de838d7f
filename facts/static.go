package facts

import (
	"context"
	"time"
)

// Static is a Provider with fixed answers. A non-nil Err makes every
// query fail, which is how probe failures are simulated.
type Static struct {
	OS         string
	ID         string
	Kernel     string
	CPU        string
	GPUList    []string
	Mem        MemoryStat
	DiskUsage  DiskStat
	Up         time.Duration
	AgeDays    int
	Pkgs       []PackageCount
	ShellName  string
	Term       string
	EditorName string
	WM         string
	User       string
	Host       string
	Init       string
	Bat        string
	Err        error
}

func staticValue[T any](s *Static, v T) (T, error) {
	if s.Err != nil {
		var zero T
		return zero, s.Err
	}
	return v, nil
}

func (s *Static) OSName(context.Context) (string, error)        { return staticValue(s, s.OS) }
func (s *Static) DistroID(context.Context) (string, error)      { return staticValue(s, s.ID) }
func (s *Static) KernelVersion(context.Context) (string, error) { return staticValue(s, s.Kernel) }
func (s *Static) CPUModel(context.Context) (string, error)      { return staticValue(s, s.CPU) }
func (s *Static) GPUs(context.Context) ([]string, error)        { return staticValue(s, s.GPUList) }
func (s *Static) Memory(context.Context) (MemoryStat, error)    { return staticValue(s, s.Mem) }
func (s *Static) Disk(context.Context) (DiskStat, error)        { return staticValue(s, s.DiskUsage) }
func (s *Static) Uptime(context.Context) (time.Duration, error) { return staticValue(s, s.Up) }
func (s *Static) DistroAge(context.Context) (int, error)        { return staticValue(s, s.AgeDays) }
func (s *Static) Shell(context.Context) (string, error)         { return staticValue(s, s.ShellName) }
func (s *Static) Terminal(context.Context) (string, error)      { return staticValue(s, s.Term) }
func (s *Static) Editor(context.Context) (string, error)        { return staticValue(s, s.EditorName) }
func (s *Static) WindowManager(context.Context) (string, error) { return staticValue(s, s.WM) }
func (s *Static) Username(context.Context) (string, error)      { return staticValue(s, s.User) }
func (s *Static) Hostname(context.Context) (string, error)      { return staticValue(s, s.Host) }
func (s *Static) InitSystem(context.Context) (string, error)    { return staticValue(s, s.Init) }
func (s *Static) Battery(context.Context) (string, error)       { return staticValue(s, s.Bat) }

func (s *Static) Packages(context.Context) ([]PackageCount, error) {
	if s.Err == nil && len(s.Pkgs) == 0 {
		return nil, ErrNoPackageManager
	}
	return staticValue(s, s.Pkgs)
}
