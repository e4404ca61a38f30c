package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"schedsim/config"
	"schedsim/internal/loader"
	"schedsim/internal/output"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

type algorithm struct {
	name  string
	title string
	run   func(*requests.ScheduleRequest) (responses.ScheduleResponse, error)
}

var algorithms = []algorithm{
	{schedulers.AlgorithmFCFS, "First Come First Served", schedulers.ScheduleFirstComeFirstServe},
	{schedulers.AlgorithmSRTF, "Shortest Remaining Time First", schedulers.ScheduleShortestRemainingTimeFirst},
	{schedulers.AlgorithmPriority, "Preemptive Priority", schedulers.SchedulePreemptivePriority},
	{schedulers.AlgorithmRoundRobin, "Round Robin", schedulers.ScheduleRoundRobin},
}

func main() {
	var (
		file    = flag.String("file", "", "CSV file of process records, pid,arrival,burst,priority or arrival,burst,priority; read from the console when empty")
		names   = flag.String("algorithms", "", "comma separated subset of fcfs,srtf,priority,round_robin (default all)")
		quantum = flag.Int("quantum", 0, "round robin time quantum (defaults to the configured value)")
	)
	flag.Parse()

	jobs, err := loadJobs(*file)
	if err != nil {
		log.Fatalln(err)
	}

	selected, err := selectAlgorithms(*names)
	if err != nil {
		log.Fatalln(err)
	}

	tq := *quantum
	if tq == 0 {
		tq = config.GetSchedulerConfig().RoundRobinTimeQuantum
	}

	for _, alg := range selected {
		// Each run gets its own request; the schedulers clone the
		// process set, so runs never observe each other's mutations.
		request := &requests.ScheduleRequest{Jobs: jobs, TimeQuantum: tq}
		response, err := alg.run(request)
		if err != nil {
			log.Fatalf("%s: %v", alg.name, err)
		}
		output.Report(os.Stdout, alg.title, response)
	}
	fmt.Println("Simulation complete.")
}

func loadJobs(path string) ([]requests.Job, error) {
	if path == "" {
		return loader.ReadConsole(os.Stdin, os.Stdout)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loader.LoadProcesses(f)
}

func selectAlgorithms(names string) ([]algorithm, error) {
	if names == "" {
		return algorithms, nil
	}
	var selected []algorithm
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		found := false
		for _, alg := range algorithms {
			if alg.name == name {
				selected = append(selected, alg)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
	}
	return selected, nil
}
