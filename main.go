package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"ant_system_tsp/modules/algorithms/antsystem"
	"ant_system_tsp/modules/models"
	"ant_system_tsp/modules/parsing"
	"ant_system_tsp/modules/statistics"
	"ant_system_tsp/modules/utilities"
)

type experimentParameters struct {
	alpha, beta, rho float64
	ants, iterations int
}

type experimentResult struct {
	bestTour              []int
	bestLength            int
	bestAtIteration       int
	computationTime       int64
	bestLengthAtIteration []int
}

type experimentSummary struct {
	experimentParameters
	statistics.RunStats
	deviation              float64
	successRate            float64
	averageComputationTime int64
}

type config struct {
	mode         string
	instance     string
	instancesDir string
	resultsDir   string
	maxSize      int
	runs         int
	seed         uint64
	experimentParameters
}

func main() {
	var cfg config

	flag.StringVar(&cfg.mode, "mode", "single", "single, sweep-ab or sweep-rho")
	flag.StringVar(&cfg.instance, "instance", "tsp_files/att48.tsp", "TSPLIB ATT instance for a single run")
	flag.StringVar(&cfg.instancesDir, "instances", "tsp_files", "directory with TSPLIB ATT instances for sweeps")
	flag.StringVar(&cfg.resultsDir, "results", "results", "directory for sweep CSVs and plots")
	flag.IntVar(&cfg.maxSize, "max-size", 600, "skip sweep instances larger than this")
	flag.IntVar(&cfg.runs, "runs", 5, "runs per parameter setting in sweeps")
	flag.Uint64Var(&cfg.seed, "seed", 42, "random seed")
	flag.IntVar(&cfg.ants, "ants", 48, "ant population size")
	flag.IntVar(&cfg.iterations, "iterations", 100, "iterations per run")
	flag.Float64Var(&cfg.alpha, "alpha", 1.0, "pheromone influence exponent")
	flag.Float64Var(&cfg.beta, "beta", 5.0, "heuristic influence exponent")
	flag.Float64Var(&cfg.rho, "rho", 0.5, "pheromone evaporation rate")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var err error
	switch cfg.mode {
	case "single":
		err = runSingle(logger, cfg)
	case "sweep-ab", "sweep-rho":
		err = runSweeps(logger, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}

	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runSingle(logger *slog.Logger, cfg config) error {
	name, cities, knownOptimal, err := parsing.ParseTSPLIBFile(cfg.instance)
	if err != nil {
		return err
	}

	logger.Info("loaded instance", "name", name, "cities", len(cities), "knownOptimal", knownOptimal)

	colony, err := antsystem.NewColony(cities, cfg.ants, cfg.iterations, cfg.alpha, cfg.beta, cfg.rho, cfg.seed)
	if err != nil {
		return err
	}

	colony.OnProgress = func(iteration, bestLength int) {
		if iteration%10 == 0 {
			logger.Info("progress", "iteration", iteration, "bestLength", bestLength)
		}
	}

	start := time.Now()
	bestTour, bestLength, err := colony.Run()
	if err != nil {
		return err
	}

	logger.Info("finished", "bestLength", bestLength, "foundAtIteration", colony.BestAtIteration, "elapsed", time.Since(start))

	if knownOptimal > 0 {
		logger.Info("deviation from optimum",
			"percent", fmt.Sprintf("%.2f", statistics.Deviation(float64(bestLength), float64(knownOptimal))))
	}

	fmt.Printf("Distance: %d\nTour: %s\n", bestLength, formatTour(bestTour, cities))

	return nil
}

func runSweeps(logger *slog.Logger, cfg config) error {
	paths, err := filepath.Glob(filepath.Join(cfg.instancesDir, "*.tsp"))
	if err != nil {
		return err
	}

	paths = utilities.FilterStrings(
		paths,
		func(file string) bool {
			problemSize, err := utilities.ExtractNumber(filepath.Base(file))
			return err == nil && problemSize <= cfg.maxSize
		})

	if len(paths) == 0 {
		return fmt.Errorf("no instances up to %d cities under %s", cfg.maxSize, cfg.instancesDir)
	}

	if err := os.MkdirAll(cfg.resultsDir, os.ModePerm); err != nil {
		return err
	}

	for _, path := range paths {
		if err := sweepInstance(logger, cfg, path); err != nil {
			return err
		}
	}

	return nil
}

func sweepInstance(logger *slog.Logger, cfg config, path string) error {
	name, cities, knownOptimal, err := parsing.ParseTSPLIBFile(path)
	if err != nil {
		return err
	}

	logger.Info("started processing instance", "name", name, "mode", cfg.mode)

	colony, err := antsystem.NewColony(cities, cfg.ants, cfg.iterations, cfg.alpha, cfg.beta, cfg.rho, cfg.seed)
	if err != nil {
		return err
	}

	settings := generateSettings(cfg)
	summaries := make([]experimentSummary, 0, len(settings))

	overallBest := experimentResult{bestLength: -1}

	for _, parameters := range settings {
		if cfg.mode == "sweep-ab" {
			colony.SetParameters(parameters.alpha, parameters.beta)
		} else {
			if err := colony.SetRho(parameters.rho); err != nil {
				return err
			}
		}

		results, err := runExperiments(colony, cfg.runs)
		if err != nil {
			return err
		}

		lengths := make([]float64, len(results))
		var totalTime int64
		for i, result := range results {
			lengths[i] = float64(result.bestLength)
			totalTime += result.computationTime

			if overallBest.bestLength < 0 || result.bestLength < overallBest.bestLength {
				overallBest = result
			}
		}

		stats := statistics.CalculateRunStats(lengths)
		summaries = append(summaries, experimentSummary{
			experimentParameters:   parameters,
			RunStats:               stats,
			deviation:              statistics.Deviation(stats.Min, float64(knownOptimal)),
			successRate:            statistics.SuccessRate(lengths, float64(knownOptimal)),
			averageComputationTime: totalTime / int64(len(results)),
		})

		logger.Info("finished setting",
			"alpha", parameters.alpha, "beta", parameters.beta, "rho", parameters.rho,
			"best", stats.Min, "mean", fmt.Sprintf("%.1f", stats.Mean))
	}

	csvPath := filepath.Join(cfg.resultsDir, name+"_"+cfg.mode+".csv")
	if err := saveStatistics(csvPath, summaries); err != nil {
		return err
	}

	plotPath := filepath.Join(cfg.resultsDir, name+"_"+cfg.mode+"_convergence.png")
	if err := plotConvergence(plotPath, name, overallBest.bestLengthAtIteration); err != nil {
		return err
	}

	logger.Info("saved results", "csv", csvPath, "plot", plotPath)

	return nil
}

// generateSettings builds the parameter grid for a sweep: an alpha/beta
// grid with rho fixed, or a rho ladder with alpha/beta fixed.
func generateSettings(cfg config) []experimentParameters {
	settings := make([]experimentParameters, 0)

	if cfg.mode == "sweep-ab" {
		for _, alpha := range utilities.GenerateRange(0.5, 2.0, 0.5) {
			for _, beta := range utilities.GenerateRange(1.0, 5.0, 1.0) {
				settings = append(settings,
					experimentParameters{alpha, beta, cfg.rho, cfg.ants, cfg.iterations})
			}
		}

		return settings
	}

	for _, rho := range utilities.GenerateRange(0.1, 0.9, 0.2) {
		settings = append(settings,
			experimentParameters{cfg.alpha, cfg.beta, rho, cfg.ants, cfg.iterations})
	}

	return settings
}

func runExperiments(colony *antsystem.Colony, numberOfRuns int) ([]experimentResult, error) {
	results := make([]experimentResult, numberOfRuns)

	for i := 0; i < numberOfRuns; i++ {
		start := time.Now()
		bestTour, bestLength, err := colony.Run()
		elapsed := time.Since(start)

		if err != nil {
			return nil, err
		}

		results[i] = experimentResult{
			bestTour:              bestTour,
			bestLength:            bestLength,
			bestAtIteration:       colony.BestAtIteration,
			computationTime:       elapsed.Milliseconds(),
			bestLengthAtIteration: colony.BestLengthAtIteration,
		}
	}

	return results, nil
}

func saveStatistics(csvPath string, summaries []experimentSummary) error {
	header := []string{
		"Alpha",
		"Beta",
		"Rho",
		"Ants number",
		"Iterations",
		"Best",
		"Worst",
		"Mean",
		"Std dev",
		"Skewness",
		"Kurtosis",
		"Best deviation [%]",
		"Success rate [%]",
		"Avg computation time [ms]"}

	file, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}

	floatFormat := "%.2f"
	for _, summary := range summaries {

		record := []string{
			fmt.Sprintf(floatFormat, summary.alpha),
			fmt.Sprintf(floatFormat, summary.beta),
			fmt.Sprintf(floatFormat, summary.rho),
			strconv.Itoa(summary.ants),
			strconv.Itoa(summary.iterations),
			fmt.Sprintf(floatFormat, summary.Min),
			fmt.Sprintf(floatFormat, summary.Max),
			fmt.Sprintf(floatFormat, summary.Mean),
			fmt.Sprintf(floatFormat, summary.StdDev),
			fmt.Sprintf(floatFormat, summary.Skewness),
			fmt.Sprintf(floatFormat, summary.Kurtosis),
			fmt.Sprintf(floatFormat, summary.deviation),
			fmt.Sprintf(floatFormat, summary.successRate),
			strconv.FormatInt(summary.averageComputationTime, 10),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// plotConvergence draws the best-length-per-iteration curve of the best
// run of a sweep.
func plotConvergence(path, name string, bestLengthAtIteration []int) error {
	points := make(plotter.XYs, len(bestLengthAtIteration))
	for i, length := range bestLengthAtIteration {
		points[i].X = float64(i)
		points[i].Y = float64(length)
	}

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Best tour length"

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}

	p.Add(plotter.NewGrid(), line)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func formatTour(tour []int, cities []models.City) string {
	labels := make([]string, len(tour))
	for i, cityIndex := range tour {
		labels[i] = strconv.Itoa(cities[cityIndex].Id)
	}

	return strings.Join(labels, ",")
}
