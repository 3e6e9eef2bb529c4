package web

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Steps    int    `json:"steps"`
	Time     string `json:"time"`
}

type ScrambleResponse struct {
	Scramble string `json:"scramble"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	moves, err := cube.ParseMoves(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}

	result, err := s.solver.Solve(cube.Solved().ApplyMoves(moves))
	if err != nil {
		http.Error(w, fmt.Sprintf("Error solving cube: %v", err), http.StatusInternalServerError)
		return
	}

	response := SolveResponse{
		Solution: cube.FormatMoves(result.Solution),
		Steps:    result.Steps,
		Time:     result.Duration.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	n := 25
	if arg := r.URL.Query().Get("moves"); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 1 {
			http.Error(w, fmt.Sprintf("Invalid moves parameter: %q", arg), http.StatusBadRequest)
			return
		}
		n = parsed
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	response := ScrambleResponse{
		Scramble: cube.FormatMoves(cube.NewScramble(rng, n)),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Kociemba Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Kociemba Solver</h1>
    <div class="container">
        <h2>Solve Your Cube</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
                <button type="button" id="randomize">Random</button>
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('randomize').addEventListener('click', async () => {
            const response = await fetch('/api/scramble');
            const result = await response.json();
            document.getElementById('scramble').value = result.scramble;
        });

        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble })
                });

                if (!response.ok) {
                    throw new Error(await response.text());
                }

                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                    '<p><strong>Steps:</strong> ' + result.steps + '</p>' +
                    '<p><strong>Time:</strong> ' + result.time + '</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}
