package parsing

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ant_system_tsp/modules/models"
)

// Known optima for the TSPLIB ATT instance family, used to report
// deviation from the optimum in sweep summaries.
var optimalSolutions = map[string]int{
	"att48":  10628,
	"att532": 27686,
}

// ParseTSPLIBFile reads a TSPLIB instance with node coordinates and an
// ATT edge weight type. It returns the instance name, the city list in
// file order, and the known optimal tour length (0 when unknown).
func ParseTSPLIBFile(path string) (name string, cities []models.City, knownOptimal int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", nil, 0, err
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	readCoordinates := false

	var dimension int
	edgeWeightType := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "EOF") {
			break
		}

		if strings.HasPrefix(line, "NAME") {
			parts := strings.Split(line, ":")
			name = strings.TrimSpace(parts[1])
		}

		if strings.HasPrefix(line, "EDGE_WEIGHT_TYPE") {
			parts := strings.Split(line, ":")
			edgeWeightType = strings.TrimSpace(parts[1])
		}

		if strings.HasPrefix(line, "DIMENSION") {
			parts := strings.Split(line, ":")
			dimension, err = strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return "", nil, 0, err
			}

			cities = make([]models.City, 0, dimension)
		}

		if readCoordinates && line != "" {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return "", nil, 0, fmt.Errorf("malformed coordinate line %q", line)
			}

			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return "", nil, 0, err
			}

			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return "", nil, 0, err
			}

			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return "", nil, 0, err
			}

			cities = append(cities, models.City{Id: id, X: x, Y: y})
		}

		if strings.HasPrefix(line, "NODE_COORD_SECTION") {
			readCoordinates = true
		}
	}

	if err := scanner.Err(); err != nil {
		return "", nil, 0, err
	}

	if edgeWeightType != "ATT" {
		return "", nil, 0, fmt.Errorf("unsupported edge weight type %q, only ATT instances are handled", edgeWeightType)
	}

	if len(cities) != dimension {
		return "", nil, 0, fmt.Errorf("found %d coordinates but dimension is %d", len(cities), dimension)
	}

	return name, cities, optimalSolutions[name], nil
}
