package ipc

import (
	"encoding/json"
	"net"

	"hypr-switch/pkg/global"
)

func SendCommand(req Request) (Response, error) {
	log := global.GetLogger()
	socketPath := global.GetConfig().GetSocketPath()

	log.Debug("Attempting to connect to socket server", "path", socketPath)

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		// No daemon listening is a normal condition for one-shot
		// invocations, which fall back to direct dispatch.
		log.Debug("Failed to connect to socket server", "path", socketPath, "error", err)
		return Response{}, err
	}
	defer conn.Close()

	log.Debug("Connected to socket server", "remote_addr", conn.RemoteAddr())

	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(req); err != nil {
		log.Error("Failed to encode request", err)
		return Response{}, err
	}

	log.Info("Request sent successfully", "command", req.Command)

	var resp Response
	decoder := json.NewDecoder(conn)
	if err := decoder.Decode(&resp); err != nil {
		log.Error("Failed to decode response", err)
		return Response{}, err
	}

	log.Info("Response received", "status", resp.Status, "message", resp.Message)
	return resp, nil
}
